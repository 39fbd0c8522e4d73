/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Dracula theme colors.
const (
	draculaCyan   = "#8BE9FD"
	draculaGreen  = "#50FA7B"
	draculaYellow = "#F1FA8C"
	draculaRed    = "#FF5555"
)

func newLogStyles() logStyles {
	return logStyles{
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
	}
}

func (s logStyles) successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.success.Render("[SUCCESS] "+fmt.Sprintf(format, args...)))
}

func (s logStyles) warningf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.warning.Render("[WARNING] "+fmt.Sprintf(format, args...)))
}

// PrintError writes err as a styled error line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, newLogStyles().error.Render("[ERROR] "+err.Error()))
}
