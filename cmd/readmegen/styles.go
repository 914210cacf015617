package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// plainOrStyled 非终端输出时不附加任何 ANSI 样式。
func plainOrStyled(writer io.Writer, style lipgloss.Style) lipgloss.Style {
	if !isTerminal(writer) {
		return lipgloss.NewStyle()
	}
	return style
}

func headingStyle(writer io.Writer) lipgloss.Style {
	return plainOrStyled(writer, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")))
}

func mutedStyle(writer io.Writer) lipgloss.Style {
	return plainOrStyled(writer, lipgloss.NewStyle().Foreground(lipgloss.Color("8")))
}

func successStyle(writer io.Writer) lipgloss.Style {
	return plainOrStyled(writer, lipgloss.NewStyle().Foreground(lipgloss.Color("10")))
}
