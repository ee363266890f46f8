// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package export implements the survey export command.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"runtime/trace"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rusq/fsadapter"
	"golang.org/x/sync/errgroup"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/cfg"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
	"github.com/rusq/lsmcp/internal/limesurvey"
)

var CmdExport = &base.Command{
	UsageLine: "lsmcp export [flags] [<survey_id> ...]",
	Short:     "export survey structure and responses to a directory or ZIP",
	Long: `
# Export Command

Export saves the structure (properties, question groups, questions) and the
responses of the given surveys to the local disk.  If no survey ids are
given, all surveys visible to the configured user are exported.

The output location is set with -base and can be a directory or a file with
the .zip extension.  Each survey is written into its own subdirectory named
after the survey id.
`,
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runExport,
}

var (
	baseLoc   string
	format    string
	withStats bool
	poolSize  int
)

func init() {
	CmdExport.Flag.StringVar(&baseLoc, "base", defBase(), "a `location` (a directory or a ZIP file) on the local disk to save\nthe export to")
	CmdExport.Flag.StringVar(&format, "format", limesurvey.FormatCSV, "responses export `format`, one of \"csv\", \"json\", \"xls\", \"doc\",\n\"pdf\" or \"html\"")
	CmdExport.Flag.BoolVar(&withStats, "stats", false, "also export the statistics PDF for each survey")
	CmdExport.Flag.IntVar(&poolSize, "p", 4, "number of surveys to export in `parallel`")
}

func defBase() string {
	return fmt.Sprintf("lsmcp_%s.zip", time.Now().Format("20060102_150405"))
}

// exporter is the subset of the LimeSurvey client used by the export
// command.
type exporter interface {
	ListSurveys(ctx context.Context) ([]limesurvey.Survey, error)
	GetSurveyProperties(ctx context.Context, surveyID int) (map[string]any, error)
	ListGroups(ctx context.Context, surveyID int) ([]limesurvey.QuestionGroup, error)
	ListQuestions(ctx context.Context, surveyID, groupID int) ([]limesurvey.Question, error)
	ExportResponses(ctx context.Context, surveyID int, format, language, completionStatus, headingType, responseType string) ([]byte, error)
	ExportStatistics(ctx context.Context, surveyID int, docType string, graph bool) ([]byte, error)
}

func runExport(ctx context.Context, cmd *base.Command, args []string) error {
	ctx, task := trace.NewTask(ctx, "runExport")
	defer task.End()

	lg := cfg.Log

	client, err := cfg.Client(ctx)
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return fmt.Errorf("export: connect: %w", err)
	}
	defer client.Close(context.WithoutCancel(ctx))

	ids, err := surveyIDs(ctx, client, args)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	if len(ids) == 0 {
		lg.InfoContext(ctx, "export: nothing to do, no surveys found")
		return nil
	}

	fsa, err := fsadapter.New(baseLoc)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("export: unable to initialise the output: %w", err)
	}
	defer fsa.Close()

	start := time.Now()
	if err := exportAll(ctx, lg, client, fsa, ids); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	lg.InfoContext(ctx, "export: complete", "surveys", len(ids), "base", baseLoc, "took", time.Since(start).String())
	return nil
}

// surveyIDs resolves the list of survey ids to export: either parsed from
// args, or all surveys visible to the user.
func surveyIDs(ctx context.Context, client exporter, args []string) ([]int, error) {
	if len(args) > 0 {
		ids := make([]int, len(args))
		for i, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid survey id %q", arg)
			}
			ids[i] = id
		}
		return ids, nil
	}
	surveys, err := client.ListSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	ids := make([]int, len(surveys))
	for i, s := range surveys {
		ids[i] = s.ID.Int()
	}
	return ids, nil
}

func exportAll(ctx context.Context, lg *slog.Logger, client exporter, fsa fsadapter.FS, ids []int) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(poolSize)
	for _, sid := range ids {
		eg.Go(func() error {
			return exportSurvey(ctx, lg, client, fsa, sid)
		})
	}
	return eg.Wait()
}

// exportSurvey writes one survey into the <sid>/ subdirectory of fsa.  A
// survey without responses is not an error: the responses file is skipped
// with a warning.
func exportSurvey(ctx context.Context, lg *slog.Logger, client exporter, fsa fsadapter.FS, sid int) error {
	lg = lg.With("survey_id", sid)

	props, err := client.GetSurveyProperties(ctx, sid)
	if err != nil {
		return fmt.Errorf("survey %d: properties: %w", sid, err)
	}
	if err := writeJSON(fsa, sid, "survey.json", props); err != nil {
		return err
	}

	groups, err := client.ListGroups(ctx, sid)
	if err != nil {
		return fmt.Errorf("survey %d: groups: %w", sid, err)
	}
	if err := writeJSON(fsa, sid, "groups.json", groups); err != nil {
		return err
	}

	questions, err := client.ListQuestions(ctx, sid, 0)
	if err != nil {
		return fmt.Errorf("survey %d: questions: %w", sid, err)
	}
	if err := writeJSON(fsa, sid, "questions.json", questions); err != nil {
		return err
	}

	data, err := client.ExportResponses(ctx, sid, format, "", "", "", "")
	if err != nil {
		var apiErr *limesurvey.APIError
		if errors.As(err, &apiErr) {
			// surveys with no responses or inactive surveys are not fatal.
			lg.WarnContext(ctx, "skipping responses", "reason", apiErr.Status)
		} else {
			return fmt.Errorf("survey %d: responses: %w", sid, err)
		}
	} else {
		name := "responses." + format
		if err := fsa.WriteFile(fname(sid, name), data, 0o644); err != nil {
			return fmt.Errorf("survey %d: write %s: %w", sid, name, err)
		}
		lg.InfoContext(ctx, "exported responses", "file", name, "size", humanize.Bytes(uint64(len(data))))
	}

	if withStats {
		stats, err := client.ExportStatistics(ctx, sid, limesurvey.FormatPDF, true)
		if err != nil {
			var apiErr *limesurvey.APIError
			if !errors.As(err, &apiErr) {
				return fmt.Errorf("survey %d: statistics: %w", sid, err)
			}
			lg.WarnContext(ctx, "skipping statistics", "reason", apiErr.Status)
		} else if err := fsa.WriteFile(fname(sid, "statistics.pdf"), stats, 0o644); err != nil {
			return fmt.Errorf("survey %d: write statistics: %w", sid, err)
		}
	}

	lg.InfoContext(ctx, "survey exported")
	return nil
}

func writeJSON(fsa fsadapter.FS, sid int, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("survey %d: marshal %s: %w", sid, name, err)
	}
	if err := fsa.WriteFile(fname(sid, name), data, 0o644); err != nil {
		return fmt.Errorf("survey %d: write %s: %w", sid, name, err)
	}
	return nil
}

func fname(sid int, name string) string {
	return path.Join(strconv.Itoa(sid), name)
}
