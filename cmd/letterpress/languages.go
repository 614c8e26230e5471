package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"letterpress/internal/langdata"
	"letterpress/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "languages",
		Short:       "List trainable languages and their resolved defaults",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := langdata.NewResolver(nil)
			codes := langdata.Codes()
			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				params, err := resolver.Resolve(langdata.Request{Lang: code})
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					code,
					language.DisplayName(code),
					strconv.Itoa(len(params.Fonts)),
					formatInts(params.Exposures),
					strconv.Itoa(params.NormMode),
					yesNo(params.RTL),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Code", "Language", "Fonts", "Exposures", "Norm", "RTL"},
				rows, 2,
			))
			return nil
		},
	}
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
