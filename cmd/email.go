/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emailCmd = &cobra.Command{
	Use:   "email <address> [date] [date]",
	Short: "Sends an artist-activity digest email",
	Long: `Emails the per-artist interaction digest to the specified address.
Optional date arguments select the period (e.g. '2026-07' or '2026-07 2026-08').
If no dates are provided, defaults to the previous month.`,
	Args: cobra.RangeArgs(1, 3),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := sendDigest(viper.GetString("database"), args[0], args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))

	var from string
	emailCmd.Flags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", emailCmd.Flags().Lookup("from"))

	var apiKey string
	emailCmd.Flags().StringVar(&apiKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", emailCmd.Flags().Lookup("sendgrid_api_key"))
}

func sendDigest(dbPath, to string, dateArgs []string) error {
	var start, end time.Time
	var err error
	if len(dateArgs) > 0 {
		start, end, err = parseDateRangeFromArgs(dateArgs)
		if err != nil {
			return fmt.Errorf("parsing dates: %w", err)
		}
	} else {
		start, end = defaultHistoryRange(time.Now())
	}

	analysis, err := digestAnalysis(dbPath, start, end)
	if err != nil {
		return err
	}

	const dateFormat = "2006-01-02"
	subject := fmt.Sprintf("soundsift digest: %s to %s", start.Format(dateFormat), end.Format(dateFormat))
	body := "<pre>\n" + analysis.String() + "</pre>\n"

	if viper.GetBool("dryRun") {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, body)
		return nil
	}

	apiKey := viper.GetString("sendgrid_api_key")
	if apiKey == "" {
		return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
	}

	from := mail.NewEmail("soundsift", viper.GetString("from"))
	message := mail.NewSingleEmail(from, subject, mail.NewEmail(to, to), analysis.String(), body)
	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sending email: status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func digestAnalysis(dbPath string, start, end time.Time) (Analysis, error) {
	const dateFormat = "2006-01-02"
	return historyAnalysis(dbPath, 0, []string{start.Format(dateFormat), end.Format(dateFormat)})
}
