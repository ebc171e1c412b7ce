package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/mock/mock_consolesession"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/consolesession/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrintSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    sessioninfo.User
		perms   []sessioninfo.PagePermission
		want    []string
		notWant []string
	}{
		{
			name: "regular user",
			user: sessioninfo.User{ID: 2, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
			perms: []sessioninfo.PagePermission{
				{Page: "Clients", CanView: true, CanEdit: true},
				{Page: "Suppliers"},
			},
			want:    []string{"ada@example.com (Ada Lovelace)", "Clients", "/pages/clients", "V/E"},
			notWant: []string{"Suppliers"},
		},
		{
			name:  "no grants",
			user:  sessioninfo.User{ID: 3, Email: "bob@example.com", Username: "bob"},
			perms: []sessioninfo.PagePermission{},
			want:  []string{"bob@example.com (bob)", "no accessible pages"},
		},
		{
			name: "superuser",
			user: sessioninfo.User{ID: 1, Email: "admin@example.com", Username: "admin", IsSuperuser: true},
			want: []string{"superuser: all pages"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			api := mock_consolesession.NewMockAPI(ctrl)
			if !tt.user.IsSuperuser {
				api.EXPECT().UserPermissions(gomock.Any(), tt.user.ID).Return(tt.perms, nil)
			}

			m := consolesession.New(api, tokenstore.NewMemoryStore())
			t.Cleanup(m.Shutdown)
			require.NoError(t, m.Login(context.Background(), sessioninfo.TokenPair{Access: "a1", Refresh: "r1"}, &tt.user))

			var buf bytes.Buffer
			printSession(&buf, m)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
