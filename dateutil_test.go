// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"
)

func TestFormatFunctions(t *testing.T) {
	testTime := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	t.Run("FormatDate", func(t *testing.T) {
		expected := "2006-01-02"
		result := FormatDate(testTime)
		if result != expected {
			t.Errorf("FormatDate: expected %q, got %q", expected, result)
		}
	})

	t.Run("FormatDateTime", func(t *testing.T) {
		expected := "2006-01-02 15:04:05 UTC"
		result := FormatDateTime(testTime)
		if result != expected {
			t.Errorf("FormatDateTime: expected %q, got %q", expected, result)
		}
	})
}

func TestParseDateTime(t *testing.T) {
	original := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

	parsed, err := ParseDateTime(FormatDateTime(original))
	if err != nil {
		t.Fatalf("ParseDateTime returned error: %v", err)
	}
	if !parsed.Equal(original) {
		t.Errorf("ParseDateTime: expected %v, got %v", original, parsed)
	}
}

func TestFormatUnix(t *testing.T) {
	ts := uint64(1640995200)
	if got := FormatUnix(&ts); got != "2022-01-01 00:00:00 UTC" {
		t.Errorf("FormatUnix: got %q", got)
	}
	if got := FormatUnix(nil); got != "-" {
		t.Errorf("FormatUnix(nil): got %q", got)
	}
}
