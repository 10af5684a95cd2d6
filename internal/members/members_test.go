package members_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terretahub/internal/avatars"
	"terretahub/internal/members"
	"terretahub/internal/testsupport"
)

func TestCreateAssignsDeterministicIdentity(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	member, err := members.Create(db, "Amparo-V", "Amparo Vidal", "fallera major")
	require.NoError(t, err)

	assert.Equal(t, "amparo-v", member.Handle, "handles are normalized to lower case")
	assert.Equal(t, avatars.ElementForUser("amparo-v"), member.Element)
	assert.Equal(t, avatars.AvatarURL("amparo-v", member.Element), member.AvatarURL)
	assert.NotZero(t, member.ID)
}

func TestCreateRejectsDuplicateHandle(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	_, err := members.Create(db, "vicent", "Vicent", "")
	require.NoError(t, err)

	_, err = members.Create(db, "Vicent", "Another Vicent", "")
	assert.ErrorIs(t, err, members.ErrMemberExists)
}

func TestCreateValidatesInput(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	tests := []struct {
		name        string
		handle      string
		displayName string
	}{
		{"empty handle", "", "Someone"},
		{"one char handle", "a", "Someone"},
		{"handle with spaces", "bad handle", "Someone"},
		{"handle with symbols", "user@@id", "Someone"},
		{"empty display name", "fine-handle", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := members.Create(db, tt.handle, tt.displayName, "")
			assert.Error(t, err)
		})
	}
}

func TestFindByHandle(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	created, err := members.Create(db, "pepica", "Pepica", "")
	require.NoError(t, err)

	found, err := members.FindByHandle(db, "  PEPICA ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = members.FindByHandle(db, "nobody")
	var notFound *members.MemberNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nobody", notFound.Handle)
}

func TestListOrdersByHandle(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	for _, handle := range []string{"zaida", "amparo", "marc"} {
		_, err := members.Create(db, handle, handle, "")
		require.NoError(t, err)
	}

	list, err := members.List(db)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "amparo", list[0].Handle)
	assert.Equal(t, "marc", list[1].Handle)
	assert.Equal(t, "zaida", list[2].Handle)
}
