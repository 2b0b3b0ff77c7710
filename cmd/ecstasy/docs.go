package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Show documentation topics",
	Long:  `Show a documentation topic rendered for the terminal, or list the available topics.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTopics(cmd)
		}
		return showTopic(cmd, args[0])
	},
}

func listTopics(cmd *cobra.Command) error {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return err
	}
	var topics []string
	for _, entry := range entries {
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)

	fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
	for _, topic := range topics {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", topic)
	}
	return nil
}

func showTopic(cmd *cobra.Command, topic string) error {
	content, err := docsFS.ReadFile("docs/" + topic + ".md")
	if err != nil {
		return fmt.Errorf("unknown topic %q, run 'ecstasy docs' for the list", topic)
	}

	rendered, err := renderMarkdown(string(content))
	if err != nil {
		// Fall back to the raw markdown
		rendered = string(content)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func renderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
