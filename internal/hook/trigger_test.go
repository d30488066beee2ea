package hook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStager struct {
	staged    []string
	stagedErr error
	added     []string
	addErr    error
}

func (f *fakeStager) StagedPaths() ([]string, error) { return f.staged, f.stagedErr }

func (f *fakeStager) StageFile(path string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, path)
	return nil
}

func TestExecute_NoContentPathsStaged_NoOp(t *testing.T) {
	stager := &fakeStager{staged: []string{"src/main.go", "README.md"}}
	ran := false
	trigger := NewTrigger(stager, "docs", "mkdocs.yml", func() (bool, error) {
		ran = true
		return true, nil
	})

	require.NoError(t, trigger.Execute())
	require.Equal(t, StateDone, trigger.State())
	require.False(t, ran)
	require.Empty(t, stager.added)
}

func TestExecute_ContentChangeStagesConfig(t *testing.T) {
	stager := &fakeStager{staged: []string{"docs/guide/start.md"}}
	trigger := NewTrigger(stager, "docs", "mkdocs.yml", func() (bool, error) {
		return true, nil
	})

	require.NoError(t, trigger.Execute())
	require.Equal(t, StateDone, trigger.State())
	require.Equal(t, []string{"mkdocs.yml"}, stager.added)
}

func TestExecute_ByteIdenticalConfigSkipsStaging(t *testing.T) {
	stager := &fakeStager{staged: []string{"docs/index.md"}}
	trigger := NewTrigger(stager, "docs", "mkdocs.yml", func() (bool, error) {
		return false, nil
	})

	require.NoError(t, trigger.Execute())
	require.Equal(t, StateDone, trigger.State())
	require.Empty(t, stager.added)
}

func TestExecute_PipelineFailureAborts(t *testing.T) {
	stager := &fakeStager{staged: []string{"docs/index.md"}}
	pipelineErr := errors.New("scan failed")
	trigger := NewTrigger(stager, "docs", "mkdocs.yml", func() (bool, error) {
		return false, pipelineErr
	})

	err := trigger.Execute()
	require.ErrorIs(t, err, pipelineErr)
	require.Equal(t, StateAborted, trigger.State())
	require.Empty(t, stager.added)
}

func TestExecute_StatusFailureAborts(t *testing.T) {
	stager := &fakeStager{stagedErr: errors.New("index locked")}
	trigger := NewTrigger(stager, "docs", "mkdocs.yml", func() (bool, error) {
		return false, nil
	})

	require.Error(t, trigger.Execute())
	require.Equal(t, StateAborted, trigger.State())
}

func TestExecute_StageFailureAborts(t *testing.T) {
	stager := &fakeStager{staged: []string{"docs/index.md"}, addErr: errors.New("index locked")}
	trigger := NewTrigger(stager, "docs", "mkdocs.yml", func() (bool, error) {
		return true, nil
	})

	require.Error(t, trigger.Execute())
	require.Equal(t, StateAborted, trigger.State())
}

func TestAnyUnderContentRoot_PrefixIsPathAware(t *testing.T) {
	trigger := NewTrigger(&fakeStager{}, "docs", "mkdocs.yml", nil)

	require.True(t, trigger.anyUnderContentRoot([]string{"docs/index.md"}))
	require.True(t, trigger.anyUnderContentRoot([]string{"docs"}))
	// "docs-site" is a sibling, not a child of "docs".
	require.False(t, trigger.anyUnderContentRoot([]string{"docs-site/index.md"}))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "aborted", StateAborted.String())
}
