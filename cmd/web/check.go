package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"veteranmentors.org/mentors-web/internal/anchors"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate content and check in-page links of the rendered sites",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("site", "", "only check this site")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	names := a.store.Library().Names()
	if only, _ := cmd.Flags().GetString("site"); only != "" {
		names = []string{only}
	}

	failed := 0
	for _, name := range names {
		rep, err := a.checkSite(name)
		if err != nil {
			return err
		}
		if rep.OK() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d ids, %d in-page links)\n", name, len(rep.IDs), len(rep.Links))
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "%s: FAIL\n%s", name, rep)
	}
	if failed > 0 {
		return fmt.Errorf("%d site(s) failed the anchor check", failed)
	}
	return nil
}

// checkSite renders a site and checks its anchors.
func (a *app) checkSite(name string) (anchors.Report, error) {
	var buf bytes.Buffer
	if err := a.renderStatic(&buf, name, ""); err != nil {
		return anchors.Report{}, err
	}
	return anchors.Check(&buf)
}
