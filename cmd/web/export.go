package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"veteranmentors.org/mentors-web/internal/content"
	handlersPkg "veteranmentors.org/mentors-web/internal/handlers"
	"veteranmentors.org/mentors-web/internal/nav"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a site to a static HTML file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "output file (defaults to stdout)")
	exportCmd.Flags().String("site", "", "site name (defaults to the configured default)")
	exportCmd.Flags().String("lang", "", "language (defaults to the fallback locale)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	siteName, _ := cmd.Flags().GetString("site")
	lang, _ := cmd.Flags().GetString("lang")

	render := func(w io.Writer) error { return a.renderStatic(w, siteName, lang) }
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return writeFile(out, render)
	}
	return render(cmd.OutOrStdout())
}

// writeFile creates path and renders into it. A failed close is reported
// since buffered data may not have reached the disk.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return render(f)
}

// renderStatic renders a site outside of a request. The page instance is
// discarded afterwards.
func (a *app) renderStatic(w io.Writer, siteName, lang string) error {
	lib := a.store.Library()
	site := lib.Default()
	if siteName != "" {
		var err error
		if site, err = lib.Site(siteName); err != nil {
			return err
		}
	}
	if lang == "" || !a.bundle.IsSupported(lang) {
		lang = a.bundle.Fallback()
	}
	page := a.pages.Create(site)
	defer a.pages.Remove(page.ID)

	path := staticPath(lib, site)
	vm, err := handlersPkg.BuildHomeData(page, handlersPkg.RequestInfo{
		Lang:      lang,
		Path:      path,
		Canonical: site.SEO.URL,
		Sites:     nav.Sites(lib.Names(), lib.DefaultName(), path),
	})
	if err != nil {
		return err
	}
	return a.views.execute(w, "base", vm)
}

func staticPath(lib *content.Library, site *content.Site) string {
	if site.Name == lib.DefaultName() {
		return "/"
	}
	return "/sites/" + site.Name
}
