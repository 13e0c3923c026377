package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/conference-scheduling/internal/config"
	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/core/services"
	"github.com/jakechorley/conference-scheduling/pkg/metrics"
)

const conflictSchedule = `
id: conflict-1
name: Conflict conference
talkTypes: [{name: Talk}]
timeslots:
  - {id: T1, start: "2026-03-02T09:00", end: "2026-03-02T10:00", talkTypes: [Talk]}
rooms:
  - {id: R1, capacity: 100, talkTypes: [Talk]}
talks:
  - {code: S01, talkType: Talk, language: en, timeslot: T1, room: R1}
  - {code: S02, talkType: Talk, language: fr, timeslot: T1, room: R1}
`

func newTestApp(t *testing.T) *AppContext {
	t.Helper()
	cfg := config.Default()
	return &AppContext{
		Cfg:        cfg,
		Calculator: services.NewCalculator(cfg, zap.NewNop()),
		Metrics:    metrics.NewManager(),
		Logger:     zap.NewNop(),
		Ctx:        context.Background(),
	}
}

func writeSchedule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreColor(t *testing.T) {
	red, yellow, green := "RED", "YELLOW", "GREEN"

	tests := []struct {
		name     string
		score    scoring.Score
		expected string
	}{
		{"zero score", scoring.Score{}, green},
		{"soft penalties only", scoring.Score{Soft: -500}, green},
		{"medium penalty", scoring.Score{Medium: -1, Soft: 20}, yellow},
		{"hard penalty", scoring.Score{Hard: -1}, red},
		{"hard penalty wins over medium", scoring.Score{Hard: -1, Medium: -3}, red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreColor(tt.score, red, yellow, green))
		})
	}
}

func TestEvaluateCmd_Table(t *testing.T) {
	app := newTestApp(t)
	path := writeSchedule(t, conflictSchedule)
	metricsFile := filepath.Join(t.TempDir(), "scheduling.prom")

	output, err := run(t, EvaluateCmd(app), path, "--metrics-file", metricsFile)
	require.NoError(t, err)
	assert.Contains(t, output, "schedule.yaml")
	assert.Contains(t, output, "-60hard/0medium/60soft")
	assert.Contains(t, output, "2/2")
	assert.Contains(t, output, "Conflict conference")

	_, err = os.Stat(metricsFile)
	assert.NoError(t, err)
}

func TestEvaluateCmd_JSON(t *testing.T) {
	app := newTestApp(t)
	path := writeSchedule(t, conflictSchedule)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	output, err := run(t, EvaluateCmd(app), path, missing, "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to evaluate")

	var views []evaluationView
	require.NoError(t, json.Unmarshal([]byte(output), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "conflict-1", views[0].ScheduleID)
	require.NotNil(t, views[0].Score)
	assert.Equal(t, int64(-60), views[0].Score.Hard)
	assert.False(t, views[0].Feasible)
	assert.Nil(t, views[1].Score)
	assert.NotEmpty(t, views[1].Error)
}

func TestEvaluateCmd_UnknownFormat(t *testing.T) {
	_, err := run(t, EvaluateCmd(newTestApp(t)), writeSchedule(t, conflictSchedule), "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestExplainCmd(t *testing.T) {
	path := writeSchedule(t, conflictSchedule)

	output, err := run(t, ExplainCmd(newTestApp(t)), path)
	require.NoError(t, err)
	assert.Contains(t, output, "Conflict conference (conflict-1)")
	assert.Contains(t, output, "Two talks [S01, S02] of same room [R1] at same time.")
	assert.Contains(t, output, scoring.LanguageDiversity)
	assert.Contains(t, output, "2 matches")

	output, err = run(t, ExplainCmd(newTestApp(t)), path, "--level", "soft", "-o", "yaml")
	require.NoError(t, err)
	var justifications []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(output), &justifications))
	require.Len(t, justifications, 1)
	assert.Equal(t, scoring.LanguageDiversity, justifications[0]["constraint"])
	assert.Equal(t, "soft", justifications[0]["level"])
}

func TestFilterJustifications(t *testing.T) {
	justifications := []scoring.Justification{
		{Constraint: scoring.RoomConflict, Level: scoring.Hard, TalkCodes: []string{"S01", "S02"}},
		{Constraint: scoring.PublishedTimeslot, Level: scoring.Medium, TalkCodes: []string{"S03"}},
		{Constraint: scoring.LanguageDiversity, Level: scoring.Soft, TalkCodes: []string{"S02", "S03"}},
	}

	assert.Len(t, filterJustifications(justifications, "", ""), 3)
	assert.Len(t, filterJustifications(justifications, "HARD", ""), 1)
	assert.Len(t, filterJustifications(justifications, "", "S03"), 2)
	assert.Len(t, filterJustifications(justifications, "soft", "S01"), 0)
}

func TestAnalyzeCmd(t *testing.T) {
	path := writeSchedule(t, conflictSchedule)

	output, err := run(t, AnalyzeCmd(newTestApp(t)), path)
	require.NoError(t, err)
	assert.Contains(t, output, scoring.RoomConflict)
	assert.NotContains(t, output, scoring.SpeakerConflict)

	output, err = run(t, AnalyzeCmd(newTestApp(t)), path, "--all")
	require.NoError(t, err)
	assert.Contains(t, output, scoring.SpeakerConflict)

	output, err = run(t, AnalyzeCmd(newTestApp(t)), path, "-o", "json")
	require.NoError(t, err)
	var analysis struct {
		Score       scoring.Score `json:"score"`
		Constraints []struct {
			Name  string `json:"name"`
			Level string `json:"level"`
		} `json:"constraints"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &analysis))
	assert.Equal(t, scoring.Score{Hard: -60, Soft: 60}, analysis.Score)
	require.Len(t, analysis.Constraints, 2)
	assert.Equal(t, "hard", analysis.Constraints[0].Level)
}

func TestConstraintsCmd(t *testing.T) {
	app := newTestApp(t)
	app.Cfg.Weights = map[string]int{scoring.SameDayTalks: 0}
	app.Calculator = services.NewCalculator(app.Cfg, zap.NewNop())

	output, err := run(t, ConstraintsCmd(app))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	// header plus one line per constraint
	assert.Len(t, lines, len(scoring.Catalog())+1)
	for _, line := range lines {
		if strings.HasPrefix(line, scoring.SameDayTalks) {
			assert.Contains(t, line, "disabled")
		}
	}
}

func TestValidateCmd(t *testing.T) {
	valid := writeSchedule(t, conflictSchedule)
	output, err := run(t, ValidateCmd(newTestApp(t)), valid)
	require.NoError(t, err)
	assert.Contains(t, output, "1 talk types, 1 timeslots, 1 rooms, 0 speakers, 2 talks")
	assert.Contains(t, output, "Schedule is valid")

	invalid := writeSchedule(t, `
name: Lab in a talk room
talkTypes: [{name: Talk}, {name: Lab}]
timeslots:
  - {id: T1, start: "2026-03-02T09:00", end: "2026-03-02T10:00", talkTypes: [Talk, Lab]}
rooms:
  - {id: R1, capacity: 100, talkTypes: [Talk]}
talks:
  - {code: L01, talkType: Lab, timeslot: T1, room: R1}
  - {code: S01, talkType: Talk}
`)
	output, err = run(t, ValidateCmd(newTestApp(t)), invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 incompatible placements")
	assert.Contains(t, output, "talk L01 of type Lab cannot be held in room R1")
	assert.Contains(t, output, "Unassigned talks (1)")
}
