package triage

import (
	"testing"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/search"

	"github.com/stretchr/testify/require"
)

func TestParseBugType(t *testing.T) {
	got, err := ParseBugType("  backend\n")
	require.NoError(t, err)
	require.Equal(t, entities.BugTypeBackend, got)

	_, err = ParseBugType("KERNEL")
	require.Error(t, err)
}

func TestParseDeveloperTypes(t *testing.T) {
	got, err := ParseDeveloperTypes("BACKEND, frontend")
	require.NoError(t, err)
	require.Equal(t, []entities.DeveloperType{entities.DeveloperBackend, entities.DeveloperFrontend}, got)

	_, err = ParseDeveloperTypes("")
	require.Error(t, err)

	_, err = ParseDeveloperTypes("BACKEND, WIZARD")
	require.Error(t, err)
}

func TestParseHours(t *testing.T) {
	got, err := ParseHours(" 8 ")
	require.NoError(t, err)
	require.Equal(t, 8, got)

	_, err = ParseHours("eight")
	require.Error(t, err)

	_, err = ParseHours("-2")
	require.Error(t, err)
}

func TestFormatPastBugs(t *testing.T) {
	require.Equal(t, "No similar past bugs found", formatPastBugs(nil))

	got := formatPastBugs([]search.Document{
		{Title: "Login broken", AssignedDeveloperEmails: "dev@x.com", ActualTimeHours: 4},
		{Title: "Unassigned one"},
	})
	require.Equal(t, "- Similar bug 'Login broken' was fixed by dev@x.com in 4 hours", got)
}
