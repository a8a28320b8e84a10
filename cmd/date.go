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
	"regexp"
	"time"
)

// Datestrings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'. A single
// argument spans its natural period (year, month, or day); two arguments
// give an explicit range.
var datestringFormats = []struct {
	pattern *regexp.Regexp
	layout  string
	span    func(time.Time) time.Time
}{
	{regexp.MustCompile(`^\d{4}$`), "2006", func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }},
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "2006-01", func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
}

func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		var span func(time.Time) time.Time
		start, span, err = parseDatestring(args[0])
		if err != nil {
			return
		}
		end = span(start)

	case 2:
		start, _, err = parseDatestring(args[0])
		if err != nil {
			return
		}
		end, _, err = parseDatestring(args[1])

	default:
		err = fmt.Errorf("expected one or two date arguments")
	}
	return
}

func parseDatestring(ds string) (time.Time, func(time.Time) time.Time, error) {
	for _, format := range datestringFormats {
		if !format.pattern.MatchString(ds) {
			continue
		}
		date, err := time.Parse(format.layout, ds)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("parsing datestring %q: %w", ds, err)
		}
		return date, format.span, nil
	}
	return time.Time{}, nil, fmt.Errorf("invalid date format: %q", ds)
}
