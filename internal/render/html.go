package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"sdet/internal/config"
	"sdet/internal/domain"
	"sdet/internal/ui"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

const (
	summaryPageTitle = "SDET Summary Test Report"
	detailPageTitle  = "SDET Summary Test Report Details"
	toolLabel        = "SDET REPORT TOOL"
)

// Renderer writes the HTML pages of a report.
type Renderer struct {
	config   *config.Config
	progress *ui.ProgressBar

	loadOnce  sync.Once
	loadErr   error
	templates *template.Template
}

// NewRenderer creates a Renderer for the given run configuration.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{config: cfg}
}

// SetProgress attaches a progress bar that is advanced once per scenario page.
func (r *Renderer) SetProgress(p *ui.ProgressBar) {
	r.progress = p
}

// PageFileName returns the scenario page file name for one test on one
// platform. The test name is lowercased; the platform id is kept as is.
func PageFileName(testName, platformID string) string {
	return fmt.Sprintf("%s_%s.html", strings.ToLower(testName), platformID)
}

// PageCount returns how many scenario pages a report will produce.
func PageCount(rep *domain.Report) int {
	count := 0
	for _, test := range rep.Failed {
		count += len(test.RunStatus)
	}
	for _, test := range rep.Successful {
		count += len(test.RunStatus)
	}
	return count
}

func (r *Renderer) load() error {
	r.loadOnce.Do(func() {
		funcs := template.FuncMap{
			"join":     strings.Join,
			"pageName": PageFileName,
			"statusClass": func(s domain.Status) string {
				if s == domain.StatusFailed {
					return "failed"
				}
				return "ok"
			},
		}
		r.templates, r.loadErr = template.New("sdet").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl")
	})
	return r.loadErr
}

// summaryPage is the data handed to the summary template.
type summaryPage struct {
	PageTitle   string
	HeaderTitle string
	ReportDate  string
	Copyright   string
	Tool        string
	ToolVersion string
	Product     string
	WithDetail  bool
	Report      *domain.Report
}

// scenarioPage is the data handed to the scenario detail template.
type scenarioPage struct {
	PageTitle   string
	HeaderTitle string
	ReportDate  string
	Copyright   string
	Tool        string
	ToolVersion string
	TestName    string
	PlatformID  string
	Status      domain.Status
	Run         *domain.PlatformRunStatus
}

// WriteSummary renders the summary page into the output directory.
func (r *Renderer) WriteSummary(rep *domain.Report) error {
	if err := r.load(); err != nil {
		return err
	}

	page := summaryPage{
		PageTitle:   summaryPageTitle,
		HeaderTitle: fmt.Sprintf("%s Summary Test Report", r.config.Product),
		ReportDate:  reportDate(),
		Copyright:   copyrightLine(),
		Tool:        toolLabel,
		ToolVersion: r.config.ToolVersion,
		Product:     r.config.Product,
		WithDetail:  r.config.ReportType >= config.ReportTypeScenario,
		Report:      rep,
	}

	if r.config.Debug {
		if err := validatePage("summary", map[string]string{
			"page_title":   page.PageTitle,
			"header_title": page.HeaderTitle,
			"report_date":  page.ReportDate,
			"copyright":    page.Copyright,
			"tool":         page.Tool,
			"tool_version": page.ToolVersion,
			"product":      page.Product,
		}); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "summary.html.tmpl", page); err != nil {
		return fmt.Errorf("render summary template: %w", err)
	}

	if err := os.MkdirAll(r.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(r.config.SummaryPagePath(), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write summary page: %w", err)
	}
	return nil
}

// WriteScenarioPages renders one page per (test, platform) pair that carries
// run details. The scenario data directory is recreated from scratch so pages
// from earlier runs never survive. Returns the number of pages written.
func (r *Renderer) WriteScenarioPages(rep *domain.Report) (int, error) {
	if err := r.load(); err != nil {
		return 0, err
	}

	dir := r.config.ScenarioDataDir()
	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("clean scenario data dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create scenario data dir: %w", err)
	}

	written := 0
	for _, tests := range [][]domain.ClassifiedTest{rep.Failed, rep.Successful} {
		for _, test := range tests {
			for _, platformID := range sortedRunPlatforms(test.RunStatus) {
				if err := r.writeScenarioPage(dir, test, platformID); err != nil {
					return written, err
				}
				written++
				if r.progress != nil {
					r.progress.Add(1)
				}
			}
		}
	}
	return written, nil
}

func (r *Renderer) writeScenarioPage(dir string, test domain.ClassifiedTest, platformID string) error {
	run := test.RunStatus[platformID]

	page := scenarioPage{
		PageTitle:   detailPageTitle,
		HeaderTitle: fmt.Sprintf("%s Test Report", test.Name),
		ReportDate:  reportDate(),
		Copyright:   copyrightLine(),
		Tool:        toolLabel,
		ToolVersion: r.config.ToolVersion,
		TestName:    test.Name,
		PlatformID:  platformID,
		Status:      test.PlatformStatus[platformID],
		Run:         run,
	}

	if r.config.Debug {
		if err := validatePage(PageFileName(test.Name, platformID), map[string]string{
			"page_title":   page.PageTitle,
			"header_title": page.HeaderTitle,
			"report_date":  page.ReportDate,
			"copyright":    page.Copyright,
			"tool":         page.Tool,
			"tool_version": page.ToolVersion,
			"test_name":    page.TestName,
			"platform_id":  page.PlatformID,
		}); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "scenario.html.tmpl", page); err != nil {
		return fmt.Errorf("render scenario page for %s on %s: %w", test.Name, platformID, err)
	}

	path := filepath.Join(dir, PageFileName(test.Name, platformID))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write scenario page %s: %w", path, err)
	}
	return nil
}

// validatePage rejects render contexts with empty required fields. Only used
// on debug runs; a silently empty header is much harder to spot in HTML than
// an error here.
func validatePage(name string, fields map[string]string) error {
	var missing []string
	for field, value := range fields {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("page %s: empty context fields: %s", name, strings.Join(missing, ", "))
	}
	return nil
}

func reportDate() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func copyrightLine() string {
	return fmt.Sprintf("Copyright %d. Presence of a copyright notice is not an acknowledgement of publication.", time.Now().Year())
}

func sortedRunPlatforms(runs map[string]*domain.PlatformRunStatus) []string {
	ids := make([]string, 0, len(runs))
	for id := range runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
