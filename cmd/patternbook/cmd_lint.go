package main

import (
	"fmt"

	"patternbook/internal/lint"
	"patternbook/internal/render"

	"github.com/spf13/cobra"
)

var lintStrict bool

// lintCmd checks document structure and snippet syntax.
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check document structure, cross-references and snippet syntax",
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Treat warnings as failures")
}

func runLint(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	l := lint.New()
	defer l.Close()

	findings := l.Corpus(cmd.Context(), cat)
	styles := render.DefaultStyles()

	errors, warnings := 0, 0
	for _, f := range findings {
		badge := styles.Warn.Render("warn ")
		if f.Severity == lint.Error {
			badge = styles.Fail.Render("error")
			errors++
		} else {
			warnings++
		}
		if f.Line > 0 {
			fmt.Printf("%s %s:%d [%s] %s\n", badge, f.Slug, f.Line, f.Rule, f.Message)
		} else {
			fmt.Printf("%s %s [%s] %s\n", badge, f.Slug, f.Rule, f.Message)
		}
	}

	if len(findings) == 0 {
		fmt.Printf("%s %d documents clean\n", styles.Pass.Render("OK   "), cat.Len())
		return nil
	}
	fmt.Printf("\n%d errors, %d warnings\n", errors, warnings)
	if errors > 0 || (lintStrict && warnings > 0) {
		return fmt.Errorf("lint failed")
	}
	return nil
}
