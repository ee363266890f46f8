package export

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rusq/fsadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/lsmcp/internal/limesurvey"
)

// fakeExporter implements exporter with canned callbacks.
type fakeExporter struct {
	listSurveysFn      func(ctx context.Context) ([]limesurvey.Survey, error)
	propertiesFn       func(ctx context.Context, sid int) (map[string]any, error)
	listGroupsFn       func(ctx context.Context, sid int) ([]limesurvey.QuestionGroup, error)
	listQuestionsFn    func(ctx context.Context, sid, gid int) ([]limesurvey.Question, error)
	exportResponsesFn  func(ctx context.Context, sid int, format, lang, status, heading, rtype string) ([]byte, error)
	exportStatisticsFn func(ctx context.Context, sid int, docType string, graph bool) ([]byte, error)
}

func (f *fakeExporter) ListSurveys(ctx context.Context) ([]limesurvey.Survey, error) {
	return f.listSurveysFn(ctx)
}

func (f *fakeExporter) GetSurveyProperties(ctx context.Context, sid int) (map[string]any, error) {
	return f.propertiesFn(ctx, sid)
}

func (f *fakeExporter) ListGroups(ctx context.Context, sid int) ([]limesurvey.QuestionGroup, error) {
	return f.listGroupsFn(ctx, sid)
}

func (f *fakeExporter) ListQuestions(ctx context.Context, sid, gid int) ([]limesurvey.Question, error) {
	return f.listQuestionsFn(ctx, sid, gid)
}

func (f *fakeExporter) ExportResponses(ctx context.Context, sid int, format, lang, status, heading, rtype string) ([]byte, error) {
	return f.exportResponsesFn(ctx, sid, format, lang, status, heading, rtype)
}

func (f *fakeExporter) ExportStatistics(ctx context.Context, sid int, docType string, graph bool) ([]byte, error) {
	return f.exportStatisticsFn(ctx, sid, docType, graph)
}

// happyExporter returns a fake that succeeds on every call.
func happyExporter() *fakeExporter {
	return &fakeExporter{
		listSurveysFn: func(context.Context) ([]limesurvey.Survey, error) {
			return []limesurvey.Survey{{ID: 12345}, {ID: 67890}}, nil
		},
		propertiesFn: func(_ context.Context, sid int) (map[string]any, error) {
			return map[string]any{"sid": strconv.Itoa(sid), "active": "Y"}, nil
		},
		listGroupsFn: func(_ context.Context, sid int) ([]limesurvey.QuestionGroup, error) {
			return []limesurvey.QuestionGroup{{ID: 1, Name: "G1"}}, nil
		},
		listQuestionsFn: func(_ context.Context, sid, gid int) ([]limesurvey.Question, error) {
			return []limesurvey.Question{{ID: 10, Title: "Q1"}}, nil
		},
		exportResponsesFn: func(_ context.Context, sid int, format, _, _, _, _ string) ([]byte, error) {
			return []byte("id,q1\n1,A\n"), nil
		},
		exportStatisticsFn: func(_ context.Context, sid int, docType string, graph bool) ([]byte, error) {
			return []byte("%PDF"), nil
		},
	}
}

func TestSurveyIDs(t *testing.T) {
	t.Run("from args", func(t *testing.T) {
		ids, err := surveyIDs(t.Context(), happyExporter(), []string{"12345", "678"})
		require.NoError(t, err)
		assert.Equal(t, []int{12345, 678}, ids)
	})
	t.Run("invalid arg", func(t *testing.T) {
		_, err := surveyIDs(t.Context(), happyExporter(), []string{"banana"})
		assert.Error(t, err)
	})
	t.Run("from server", func(t *testing.T) {
		ids, err := surveyIDs(t.Context(), happyExporter(), nil)
		require.NoError(t, err)
		assert.Equal(t, []int{12345, 67890}, ids)
	})
	t.Run("server error", func(t *testing.T) {
		f := happyExporter()
		f.listSurveysFn = func(context.Context) ([]limesurvey.Survey, error) {
			return nil, errors.New("boom")
		}
		_, err := surveyIDs(t.Context(), f, nil)
		assert.Error(t, err)
	})
}

func TestExportSurvey(t *testing.T) {
	lg := slog.New(slog.DiscardHandler)

	t.Run("writes all files", func(t *testing.T) {
		dir := t.TempDir()
		fsa, err := fsadapter.New(dir)
		require.NoError(t, err)
		defer fsa.Close()

		require.NoError(t, exportSurvey(t.Context(), lg, happyExporter(), fsa, 12345))

		for _, name := range []string{"survey.json", "groups.json", "questions.json", "responses.csv"} {
			assert.FileExists(t, filepath.Join(dir, "12345", name))
		}
		data, err := os.ReadFile(filepath.Join(dir, "12345", "responses.csv"))
		require.NoError(t, err)
		assert.Equal(t, "id,q1\n1,A\n", string(data))
	})
	t.Run("no responses is not fatal", func(t *testing.T) {
		dir := t.TempDir()
		fsa, err := fsadapter.New(dir)
		require.NoError(t, err)
		defer fsa.Close()

		f := happyExporter()
		f.exportResponsesFn = func(_ context.Context, sid int, _, _, _, _, _ string) ([]byte, error) {
			return nil, &limesurvey.APIError{Method: "export_responses", Status: "No Data, survey table does not exist."}
		}
		require.NoError(t, exportSurvey(t.Context(), lg, f, fsa, 12345))
		assert.FileExists(t, filepath.Join(dir, "12345", "survey.json"))
		assert.NoFileExists(t, filepath.Join(dir, "12345", "responses.csv"))
	})
	t.Run("properties error is fatal", func(t *testing.T) {
		fsa, err := fsadapter.New(t.TempDir())
		require.NoError(t, err)
		defer fsa.Close()

		f := happyExporter()
		f.propertiesFn = func(context.Context, int) (map[string]any, error) {
			return nil, errors.New("no permission")
		}
		assert.Error(t, exportSurvey(t.Context(), lg, f, fsa, 12345))
	})
}

func TestExportAll(t *testing.T) {
	lg := slog.New(slog.DiscardHandler)
	dir := t.TempDir()
	fsa, err := fsadapter.New(dir)
	require.NoError(t, err)
	defer fsa.Close()

	require.NoError(t, exportAll(t.Context(), lg, happyExporter(), fsa, []int{12345, 67890}))
	assert.FileExists(t, filepath.Join(dir, "12345", "survey.json"))
	assert.FileExists(t, filepath.Join(dir, "67890", "survey.json"))
}

func TestFname(t *testing.T) {
	assert.Equal(t, "12345/responses.csv", fname(12345, "responses.csv"))
}
