package permissions

import (
	"context"
	"testing"

	"github.com/cccteam/consolesession/mock/mock_permissions"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestEditor_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  *sessioninfo.User
		prepare func(*mock_permissions.MockAPI)
		want    Matrix
	}{
		{
			name: "new account",
			want: Initialize(),
		},
		{
			name:   "superuser",
			target: &sessioninfo.User{ID: 1, IsSuperuser: true},
			want:   Initialize(),
		},
		{
			name:   "regular user",
			target: &sessioninfo.User{ID: 4},
			prepare: func(api *mock_permissions.MockAPI) {
				api.EXPECT().UserPermissions(gomock.Any(), int64(4)).
					Return([]sessioninfo.PagePermission{{Page: "Clients", CanView: true}}, nil)
			},
			want: Initialize().Toggle("Clients", CanView, true),
		},
		{
			name:   "fetch failure",
			target: &sessioninfo.User{ID: 4},
			prepare: func(api *mock_permissions.MockAPI) {
				api.EXPECT().UserPermissions(gomock.Any(), int64(4)).Return(nil, errors.New("boom"))
			},
			want: Initialize(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			api := mock_permissions.NewMockAPI(ctrl)
			if tt.prepare != nil {
				tt.prepare(api)
			}

			got := NewEditor(api).Load(context.Background(), tt.target)
			if diff := cmp.Diff(tt.want.Permissions(), got.Permissions()); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditor_Save(t *testing.T) {
	t.Parallel()

	matrix := Initialize().Toggle("Clients", CanEdit, true)
	regular := sessioninfo.UserFields{Email: "new@b.com", Username: "new"}
	super := sessioninfo.UserFields{Email: "root@b.com", IsSuperuser: true}

	tests := []struct {
		name        string
		req         SaveRequest
		prepare     func(*mock_permissions.MockAPI)
		want        *SaveResult
		wantErr     bool
		wantPartial bool
		wantInvalid bool
	}{
		{
			name: "create regular user writes every row",
			req:  SaveRequest{Mode: Create, User: regular, Matrix: matrix},
			prepare: func(api *mock_permissions.MockAPI) {
				gomock.InOrder(
					api.EXPECT().CreateUser(gomock.Any(), regular).
						Return(&sessioninfo.CreatedUser{User: sessioninfo.User{ID: 9, Email: "new@b.com"}, Password: "s3cret"}, nil),
					api.EXPECT().UpdateUserPermissions(gomock.Any(), int64(9), matrix.Permissions()).Return(nil),
				)
			},
			want: &SaveResult{User: &sessioninfo.User{ID: 9, Email: "new@b.com"}, Password: "s3cret", PermissionsWritten: true},
		},
		{
			name: "create superuser issues no permission write",
			req:  SaveRequest{Mode: Create, User: super, Matrix: matrix},
			prepare: func(api *mock_permissions.MockAPI) {
				api.EXPECT().CreateUser(gomock.Any(), super).
					Return(&sessioninfo.CreatedUser{User: sessioninfo.User{ID: 10, IsSuperuser: true}, Password: "pw"}, nil)
				api.EXPECT().UpdateUserPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			want: &SaveResult{User: &sessioninfo.User{ID: 10, IsSuperuser: true}, Password: "pw"},
		},
		{
			name: "edit regular user",
			req:  SaveRequest{Mode: Edit, UserID: 4, User: regular, Matrix: matrix},
			prepare: func(api *mock_permissions.MockAPI) {
				api.EXPECT().UpdateUser(gomock.Any(), int64(4), regular).Return(&sessioninfo.User{}, nil)
				api.EXPECT().UpdateUserPermissions(gomock.Any(), int64(4), matrix.Permissions()).Return(nil)
			},
			want: &SaveResult{User: &sessioninfo.User{ID: 4}, PermissionsWritten: true},
		},
		{
			name: "account write failure stops the save",
			req:  SaveRequest{Mode: Create, User: regular, Matrix: matrix},
			prepare: func(api *mock_permissions.MockAPI) {
				api.EXPECT().CreateUser(gomock.Any(), regular).Return(nil, errors.New("duplicate email"))
			},
			wantErr: true,
		},
		{
			name: "permission write failure is partial",
			req:  SaveRequest{Mode: Create, User: regular, Matrix: matrix},
			prepare: func(api *mock_permissions.MockAPI) {
				api.EXPECT().CreateUser(gomock.Any(), regular).
					Return(&sessioninfo.CreatedUser{User: sessioninfo.User{ID: 9}, Password: "s3cret"}, nil)
				api.EXPECT().UpdateUserPermissions(gomock.Any(), int64(9), gomock.Any()).Return(errors.New("boom"))
			},
			wantErr:     true,
			wantPartial: true,
		},
		{
			name:        "invalid email",
			req:         SaveRequest{Mode: Create, User: sessioninfo.UserFields{Email: "not-an-email"}},
			wantErr:     true,
			wantInvalid: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			api := mock_permissions.NewMockAPI(ctrl)
			if tt.prepare != nil {
				tt.prepare(api)
			}

			got, err := NewEditor(api).Save(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Save() error = %v, wantErr %v", err, tt.wantErr)
			}

			var partial *PartialSaveError
			assert.Equal(t, tt.wantPartial, errors.As(err, &partial))
			if tt.wantPartial {
				assert.Equal(t, "s3cret", partial.Password)
			}

			_, invalid := ValidationErrors(err)
			assert.Equal(t, tt.wantInvalid, invalid)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Save() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditor_Save_Scenario_SuperuserMatrixIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	api := mock_permissions.NewMockAPI(ctrl)
	api.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(&sessioninfo.CreatedUser{User: sessioninfo.User{ID: 11, IsSuperuser: true}}, nil)

	full := Initialize()
	for _, p := range full.Permissions() {
		full = full.Toggle(p.Page, CanDelete, true)
	}

	res, err := NewEditor(api).Save(context.Background(), SaveRequest{
		Mode:   Create,
		User:   sessioninfo.UserFields{Email: "boss@b.com", IsSuperuser: true},
		Matrix: full,
	})
	require.NoError(t, err)
	assert.False(t, res.PermissionsWritten)
}
