package summary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tangiwai/cordis-summary/internal/domain"
)

func TestMakeLink(t *testing.T) {
	link := MakeLink("https://cordis.europa.eu/project/id/", 101000123)
	assert.Equal(t, "101000123", link.Label)
	assert.Equal(t, "https://cordis.europa.eu/project/id/101000123", link.URL)
}

func TestDecorateKeepsRawIDs(t *testing.T) {
	participations := []domain.ParticipationRecord{
		participation(42, "UniX", "NZ", 100, "ABC", "1", domain.ProgrammeH2020),
	}

	res := testSummarizer().Summarize(context.Background(), participations, nil, []string{"NZ"})

	require.Len(t, res.Detail, 1)
	d := res.Detail[0]
	assert.Equal(t, int64(42), d.OrganisationID)
	assert.Equal(t, int64(100), d.ProjectID)
	assert.Equal(t, "42", d.OrganisationLink.Label)
	assert.Equal(t, "https://org.example/42", d.OrganisationLink.URL)
	assert.Equal(t, "https://project.example/100", d.ProjectLink.URL)

	require.Len(t, res.Projects, 1)
	assert.Equal(t, "https://project.example/100", res.Projects[0].ProjectLink.URL)
}
