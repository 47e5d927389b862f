package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"fenum.dev/pkg/fenum/internal/adapter"
	"fenum.dev/pkg/fenum/internal/controller"
	controllermocks "fenum.dev/pkg/fenum/internal/controller/mocks"
	domain "fenum.dev/pkg/fenum/internal/domain"
	m "fenum.dev/pkg/fenum/internal/model"
)

func TestMain(tm *testing.M) {
	goleak.VerifyTestMain(tm)
}

func newWorkflow(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(domain.NewEnumerator(adapter.NewLocalFSAdapter()), ui)
}

func makeRoot(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	}

	return root
}

func TestWorkflow_List_PreservesRootOrder(t *testing.T) {
	roots := []string{
		makeRoot(t, "one.txt"),
		makeRoot(t, "two.txt", "nested/skip.txt"),
		makeRoot(t, "three.txt"),
	}

	mockUI := new(controllermocks.MockUI)
	mockUI.On("DisplayListings", mock.Anything, mock.MatchedBy(func(listings []m.Listing) bool {
		if len(listings) != len(roots) {
			return false
		}

		for i, listing := range listings {
			if listing.Root != m.Path(roots[i]) || listing.Recursive || len(listing.Entries) != 1 {
				return false
			}
		}

		return listings[0].Entries[0].Name == "one.txt" &&
			listings[1].Entries[0].Name == "two.txt" &&
			listings[2].Entries[0].Name == "three.txt"
	}), mock.Anything).Return(nil).Once()

	err := newWorkflow(mockUI).List(context.Background(), domain.ListArgs{
		Paths:    []m.Path{m.Path(roots[0]), m.Path(roots[1]), m.Path(roots[2])},
		Parallel: 2,
		Format:   controller.FormatText,
	})
	require.NoError(t, err)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_List_Recursive(t *testing.T) {
	root := makeRoot(t, "a.txt", "sub/b.txt")

	mockUI := new(controllermocks.MockUI)
	mockUI.On("DisplayListings", mock.Anything, mock.MatchedBy(func(listings []m.Listing) bool {
		return len(listings) == 1 && listings[0].Recursive && len(listings[0].Entries) == 2
	}), mock.Anything).Return(nil).Once()

	err := newWorkflow(mockUI).List(context.Background(), domain.ListArgs{
		Paths:     []m.Path{m.Path(root)},
		Recursive: true,
	})
	require.NoError(t, err)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_List_FailsOnFirstError(t *testing.T) {
	good := makeRoot(t, "a.txt")
	missing := filepath.Join(t.TempDir(), "missing")

	mockUI := new(controllermocks.MockUI)

	err := newWorkflow(mockUI).List(context.Background(), domain.ListArgs{
		Paths: []m.Path{m.Path(good), m.Path(missing)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	mockUI.AssertNotCalled(t, "DisplayListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_List_InvalidExclude(t *testing.T) {
	mockUI := new(controllermocks.MockUI)

	err := newWorkflow(mockUI).List(context.Background(), domain.ListArgs{
		Paths:   []m.Path{m.Path(t.TempDir())},
		Exclude: []string{"[unterminated"},
	})
	require.Error(t, err)
	mockUI.AssertNotCalled(t, "DisplayListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_List_DisplayError(t *testing.T) {
	root := makeRoot(t, "a.txt")
	displayErr := errors.New("display failed")

	mockUI := new(controllermocks.MockUI)
	mockUI.On("DisplayListings", mock.Anything, mock.Anything, mock.Anything).Return(displayErr).Once()

	err := newWorkflow(mockUI).List(context.Background(), domain.ListArgs{Paths: []m.Path{m.Path(root)}})
	require.ErrorIs(t, err, displayErr)
}

func TestWorkflow_Walk_ReportsEveryVisitedFile(t *testing.T) {
	root := makeRoot(t, "a.txt", "sub/b.txt")

	mockUI := new(controllermocks.MockUI)
	mockUI.On("DisplayVisit", mock.Anything, mock.MatchedBy(func(e m.Entry) bool { return e.Name == "a.txt" })).Return().Once()
	mockUI.On("DisplayVisit", mock.Anything, mock.MatchedBy(func(e m.Entry) bool { return e.Name == "b.txt" })).Return().Once()
	mockUI.On("DisplayIndexedNames", mock.Anything, []string{"a.txt", "b.txt"}).Return(nil).Once()

	err := newWorkflow(mockUI).Walk(context.Background(), domain.WalkArgs{Root: m.Path(root)})
	require.NoError(t, err)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Walk_Quiet(t *testing.T) {
	root := makeRoot(t, "a.txt")

	mockUI := new(controllermocks.MockUI)
	mockUI.On("DisplayIndexedNames", mock.Anything, []string{"a.txt"}).Return(nil).Once()

	err := newWorkflow(mockUI).Walk(context.Background(), domain.WalkArgs{Root: m.Path(root), Quiet: true})
	require.NoError(t, err)
	mockUI.AssertExpectations(t)
	mockUI.AssertNotCalled(t, "DisplayVisit", mock.Anything, mock.Anything)
}

func TestWorkflow_Walk_MissingRoot(t *testing.T) {
	mockUI := new(controllermocks.MockUI)

	err := newWorkflow(mockUI).Walk(context.Background(), domain.WalkArgs{
		Root: m.Path(filepath.Join(t.TempDir(), "missing")),
	})
	require.Error(t, err)
	mockUI.AssertNotCalled(t, "DisplayIndexedNames", mock.Anything, mock.Anything)
}

func TestWorkflow_Walk_InvalidExclude(t *testing.T) {
	mockUI := new(controllermocks.MockUI)

	err := newWorkflow(mockUI).Walk(context.Background(), domain.WalkArgs{
		Root:    m.Path(makeRoot(t, "a.txt")),
		Exclude: []string{"("},
	})
	require.Error(t, err)
	mockUI.AssertNotCalled(t, "DisplayVisit", mock.Anything, mock.Anything)
	mockUI.AssertNotCalled(t, "DisplayIndexedNames", mock.Anything, mock.Anything)
}

func TestWorkflow_Numbers(t *testing.T) {
	t.Run("without literals", func(t *testing.T) {
		mockUI := new(controllermocks.MockUI)
		mockUI.On("DisplayNumbers", mock.Anything,
			[]string{domain.NumbersBanner, domain.NumbersBanner},
			domain.Series(domain.SeriesLength),
			([]m.Literal)(nil),
		).Return(nil).Once()

		require.NoError(t, newWorkflow(mockUI).Numbers(context.Background(), domain.NumbersArgs{}))
		mockUI.AssertExpectations(t)
	})

	t.Run("with literals", func(t *testing.T) {
		mockUI := new(controllermocks.MockUI)
		mockUI.On("DisplayNumbers", mock.Anything, mock.Anything, mock.Anything, domain.LiteralTable()).Return(nil).Once()

		require.NoError(t, newWorkflow(mockUI).Numbers(context.Background(), domain.NumbersArgs{Literals: true}))
		mockUI.AssertExpectations(t)
	})
}
