package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slack2jira/pkg/cli"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		gt.NoError(t, cli.LoadDotEnv(filepath.Join(t.TempDir(), "none.env")))
	})

	t.Run("exports variables without overwriting", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		gt.NoError(t, os.WriteFile(path, []byte("SLACK2JIRA_TEST_A=from-file\nSLACK2JIRA_TEST_B=from-file\n"), 0600)).Required()
		t.Setenv("SLACK2JIRA_TEST_B", "from-env")
		t.Setenv("SLACK2JIRA_TEST_A", "")
		gt.NoError(t, os.Unsetenv("SLACK2JIRA_TEST_A")).Required()

		gt.NoError(t, cli.LoadDotEnv(path)).Required()
		gt.Value(t, os.Getenv("SLACK2JIRA_TEST_A")).Equal("from-file")
		gt.Value(t, os.Getenv("SLACK2JIRA_TEST_B")).Equal("from-env")
	})
}

func TestRunSyncRequiresCredentials(t *testing.T) {
	t.Setenv("SLACK2JIRA_SLACK_TOKEN", "")
	t.Setenv("SLACK_TOKEN", "")
	t.Chdir(t.TempDir())

	logPath := filepath.Join(t.TempDir(), "log")
	err := cli.Run(context.Background(), []string{"slack2jira", "--log-format", "json", "--log-output", logPath, "sync"}, "test")
	gt.Error(t, err)
	gt.Value(t, countLogs(t, logPath, "failed to run app")).Equal(1)
}

func TestRunSyncRejectsInvalidPageSize(t *testing.T) {
	t.Chdir(t.TempDir())

	err := cli.Run(context.Background(), []string{
		"slack2jira", "--log-output", filepath.Join(t.TempDir(), "log"),
		"sync", "--page-size", "0",
	}, "test")
	gt.Error(t, err)
}
