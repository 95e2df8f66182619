package user

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	byID    map[string]*User
	updates int
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[string]*User{}}
}

func (r *memRepo) Create(_ context.Context, u *User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) FindByID(_ context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) Update(_ context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.updates++
	return nil
}

func (r *memRepo) ListAll(_ context.Context) ([]*User, error) {
	result := []*User{}
	for _, u := range r.byID {
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

type fakeUploader struct {
	fail  bool
	calls int
}

func (f *fakeUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	f.calls++
	if f.fail {
		return "", errors.New("storage unreachable")
	}
	return "https://cdn.test/" + key, nil
}

func seedUser() *User {
	return &User{
		ID:          "u-1",
		Fullname:    "Ada Lovelace",
		Email:       "ada@jobhub.test",
		PhoneNumber: "12345",
		Password:    "$2a$10$somethinghashed",
		Role:        RoleStudent,
		Profile: Profile{
			Bio:          "old bio",
			Skills:       []string{"Go", "SQL"},
			ProfilePhoto: "https://cdn.test/old-photo",
			Resume:       "https://cdn.test/old-resume",
		},
		CreatedAt: time.Now(),
	}
}

func updateRequest(t *testing.T, h *ProfileHandler, userID string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := w.CreateFormFile(name, name+".bin")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/profile/update", buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	require.NoError(t, h.UpdateProfile(c))
	return rec
}

func TestUpdateProfileUnauthorized(t *testing.T) {
	h := NewProfileHandler(newMemRepo(), &fakeUploader{})
	rec := updateRequest(t, h, "", map[string]string{"bio": "hi"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfileUserGone(t *testing.T) {
	h := NewProfileHandler(newMemRepo(), &fakeUploader{})
	rec := updateRequest(t, h, "ghost", map[string]string{"bio": "hi"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfileBioOnly(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	h := NewProfileHandler(repo, &fakeUploader{})

	rec := updateRequest(t, h, "u-1", map[string]string{"bio": "new bio"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	u := repo.byID["u-1"]
	assert.Equal(t, "new bio", u.Profile.Bio)
	assert.Equal(t, "Ada Lovelace", u.Fullname)
	assert.Equal(t, "ada@jobhub.test", u.Email)
	assert.Equal(t, "12345", u.PhoneNumber)
	assert.Equal(t, []string{"Go", "SQL"}, u.Profile.Skills)
	assert.Equal(t, "https://cdn.test/old-photo", u.Profile.ProfilePhoto)
	assert.Equal(t, "https://cdn.test/old-resume", u.Profile.Resume)

	assert.NotContains(t, rec.Body.String(), u.Password)
}

func TestUpdateProfileEmptySkillsKeepsExisting(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	h := NewProfileHandler(repo, &fakeUploader{})

	// An empty skills field is indistinguishable from "no change": the
	// stored skills survive. This is the documented cannot-clear behavior.
	rec := updateRequest(t, h, "u-1", map[string]string{"skills": ""}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Go", "SQL"}, repo.byID["u-1"].Profile.Skills)
}

func TestUpdateProfileSkillsSplitAndTrim(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	h := NewProfileHandler(repo, &fakeUploader{})

	rec := updateRequest(t, h, "u-1", map[string]string{"skills": "Go,  gRPC , Postgres"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Go", "gRPC", "Postgres"}, repo.byID["u-1"].Profile.Skills)
}

func TestUpdateProfilePhotoUploadFailure(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	h := NewProfileHandler(repo, &fakeUploader{fail: true})

	rec := updateRequest(t, h, "u-1",
		map[string]string{"bio": "new bio"},
		map[string][]byte{"profilePhoto": []byte("png-bytes")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile photo upload failed")
	// The request aborted before persisting anything.
	assert.Zero(t, repo.updates)
	assert.Equal(t, "old bio", repo.byID["u-1"].Profile.Bio)
}

func TestUpdateProfileResumeUploadFailure(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	h := NewProfileHandler(repo, &fakeUploader{fail: true})

	rec := updateRequest(t, h, "u-1", nil,
		map[string][]byte{"resume": []byte("pdf-bytes")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resume upload failed")
}

func TestUpdateProfileUploadsBothFiles(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	up := &fakeUploader{}
	h := NewProfileHandler(repo, up)

	rec := updateRequest(t, h, "u-1", nil, map[string][]byte{
		"profilePhoto": []byte("png-bytes"),
		"resume":       []byte("pdf-bytes"),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, up.calls)
	u := repo.byID["u-1"]
	assert.NotEqual(t, "https://cdn.test/old-photo", u.Profile.ProfilePhoto)
	assert.NotEqual(t, "https://cdn.test/old-resume", u.Profile.Resume)
	assert.NotEmpty(t, u.Profile.ProfilePhoto)
	assert.NotEmpty(t, u.Profile.Resume)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), seedUser()))
	other := seedUser()
	other.ID = "u-2"
	other.Email = "taken@jobhub.test"
	require.NoError(t, repo.Create(context.Background(), other))
	h := NewProfileHandler(repo, &fakeUploader{})

	rec := updateRequest(t, h, "u-1", map[string]string{"email": "taken@jobhub.test"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists with this email")
}

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Go", []string{"Go"}},
		{"trimmed", " Go , SQL ", []string{"Go", "SQL"}},
		{"order preserved", "c,b,a", []string{"c", "b", "a"}},
		{"duplicates preserved", "Go,Go", []string{"Go", "Go"}},
		{"empty entries preserved", "a,,b", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSkills(tt.in))
		})
	}
}
