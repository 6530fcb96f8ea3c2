package scene

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Report is the outcome of one scene evaluation.
type Report struct {
	RunID    string           `yaml:"run_id"`
	Scene    string           `yaml:"scene"`
	Source   string           `yaml:"source,omitempty"`
	Backend  string           `yaml:"backend"`
	Workers  int              `yaml:"workers"`
	Elapsed  time.Duration    `yaml:"elapsed"`
	AvgJobMs float64          `yaml:"avg_job_ms"`
	Results  []QueryResult    `yaml:"results"`
	Volumes  []VolumeEstimate `yaml:"volumes,omitempty"`
}

type QueryResult struct {
	Query  string        `yaml:"query"`
	Point  [3]float32    `yaml:"point,flow"`
	Shapes []ShapeResult `yaml:"shapes"`
}

type ShapeResult struct {
	Shape    string     `yaml:"shape"`
	Kind     string     `yaml:"kind"`
	Contains bool       `yaml:"contains"`
	Closest  [3]float32 `yaml:"closest,flow"`
	Distance float32    `yaml:"distance"`
	Hit      *RayHit    `yaml:"hit,omitempty"`
}

// RayHit is the first hit of a query's ray on one shape.
type RayHit struct {
	T     float32    `yaml:"t"`
	Point [3]float32 `yaml:"point,flow"`
}

type VolumeEstimate struct {
	Shape        string     `yaml:"shape"`
	Samples      int        `yaml:"samples"`
	Inside       int        `yaml:"inside"`
	BoundsVolume float32    `yaml:"bounds_volume"`
	Volume       float32    `yaml:"volume"`
	Centroid     [3]float32 `yaml:"centroid,flow"`
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Row 0 is the header.
func styleRow(row, _ int) lipgloss.Style {
	if row == 0 {
		return headerStyle
	}
	return cellStyle
}

// WriteText renders the report as terminal tables, one for the queries and
// one for the volume estimates.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "scene %q  run %s  backend %s  workers %d  elapsed %s\n",
		r.Scene, r.RunID, r.Backend, r.Workers, r.Elapsed); err != nil {
		return err
	}

	queries := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleRow).
		Headers("QUERY", "SHAPE", "KIND", "INSIDE", "CLOSEST", "DISTANCE", "RAY T")
	for _, q := range r.Results {
		for _, s := range q.Shapes {
			t := "-"
			if s.Hit != nil {
				t = formatFloat(s.Hit.T)
			}
			queries.Row(q.Query, s.Shape, s.Kind, strconv.FormatBool(s.Contains), formatVec(s.Closest), formatFloat(s.Distance), t)
		}
	}
	if _, err := fmt.Fprintln(w, queries.Render()); err != nil {
		return err
	}

	if len(r.Volumes) == 0 {
		return nil
	}
	volumes := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleRow).
		Headers("SHAPE", "SAMPLES", "INSIDE", "VOLUME", "CENTROID")
	for _, v := range r.Volumes {
		volumes.Row(v.Shape, strconv.Itoa(v.Samples), strconv.Itoa(v.Inside), formatFloat(v.Volume), formatVec(v.Centroid))
	}
	_, err := fmt.Fprintln(w, volumes.Render())
	return err
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 4, 32)
}

func formatVec(v [3]float32) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
}
