/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package ruleimport

import (
	"encoding/csv"
	"io"
)

// Export writes the entries as CSV, with the columns in the same order the
// parser reads them so an exported file round-trips through Parse.
func Export(ruleType RuleType, entries []Entry, w io.Writer) error {

	writer := csv.NewWriter(w)

	switch ruleType {
	case ValidationRules:
		if err := writer.Write([]string{"value", "status"}); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := writer.Write([]string{entry.MatchValue, entry.Status}); err != nil {
				return err
			}
		}
	case CorrectionRules:
		if err := writer.Write([]string{"match_value", "replacement_value", "field", "status"}); err != nil {
			return err
		}
		for _, entry := range entries {
			record := []string{entry.MatchValue, entry.ReplacementValue, entry.Field, entry.Status}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
