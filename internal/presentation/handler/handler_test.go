package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
	"petstar/internal/presentation"
)

type mockPostingService struct{ mock.Mock }

func (m *mockPostingService) Create(ctx context.Context, requester entity.Principal, req dto.PostingRequest,
	images []*entity.UploadFile,
) (string, error) {
	args := m.Called(ctx, requester, req, images)

	return args.String(0), args.Error(1)
}

func (m *mockPostingService) Get(ctx context.Context, id string, requester entity.Principal) (*model.Posting, error) {
	args := m.Called(ctx, id, requester)
	p, _ := args.Get(0).(*model.Posting)

	return p, args.Error(1)
}

func (m *mockPostingService) Update(ctx context.Context, id string, requester entity.Principal,
	req dto.PostingUpdateRequest,
) (*model.Posting, error) {
	args := m.Called(ctx, id, requester, req)
	p, _ := args.Get(0).(*model.Posting)

	return p, args.Error(1)
}

func (m *mockPostingService) Delete(ctx context.Context, id string, requester entity.Principal) error {
	return m.Called(ctx, id, requester).Error(0)
}

type mockVideoService struct{ mock.Mock }

func (m *mockVideoService) Create(ctx context.Context, requester entity.Principal, petID string,
	req dto.VideoInfoRequest, source, thumbnail *entity.UploadFile,
) (string, error) {
	args := m.Called(ctx, requester, petID, req, source, thumbnail)

	return args.String(0), args.Error(1)
}

func (m *mockVideoService) Get(ctx context.Context, id string, requester entity.Principal) (*model.Video, error) {
	args := m.Called(ctx, id, requester)
	v, _ := args.Get(0).(*model.Video)

	return v, args.Error(1)
}

func (m *mockVideoService) Update(ctx context.Context, id string, requester entity.Principal,
	req dto.VideoUpdateRequest, thumbnail *entity.UploadFile,
) (*model.Video, error) {
	args := m.Called(ctx, id, requester, req, thumbnail)
	v, _ := args.Get(0).(*model.Video)

	return v, args.Error(1)
}

func (m *mockVideoService) Delete(ctx context.Context, id string, requester entity.Principal) error {
	return m.Called(ctx, id, requester).Error(0)
}

type mockPetService struct{ mock.Mock }

func (m *mockPetService) Create(ctx context.Context, requester entity.Principal, req dto.PetRequest,
	image *entity.UploadFile,
) (string, error) {
	args := m.Called(ctx, requester, req, image)

	return args.String(0), args.Error(1)
}

func (m *mockPetService) Get(ctx context.Context, id string) (*model.Pet, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Pet)

	return p, args.Error(1)
}

func (m *mockPetService) Update(ctx context.Context, id string, req dto.PetRequest,
	image *entity.UploadFile,
) (*model.Pet, error) {
	args := m.Called(ctx, id, req, image)
	p, _ := args.Get(0).(*model.Pet)

	return p, args.Error(1)
}

func (m *mockPetService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Create(ctx context.Context, req dto.UserCreateRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*model.User)

	return u, args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)

	return u, args.Error(1)
}

func (m *mockUserService) Me(ctx context.Context, requester entity.Principal) (*model.User, error) {
	args := m.Called(ctx, requester)
	u, _ := args.Get(0).(*model.User)

	return u, args.Error(1)
}

type testServer struct {
	echo     *echo.Echo
	postings *mockPostingService
	videos   *mockVideoService
	pets     *mockPetService
	users    *mockUserService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		echo:     echo.New(),
		postings: &mockPostingService{},
		videos:   &mockVideoService{},
		pets:     &mockPetService{},
		users:    &mockUserService{},
	}
	s.echo.Validator = presentation.NewValidator()
	s.echo.HTTPErrorHandler = presentation.HTTPErrorHandler

	Register(s.echo.Group("/api"), Handlers{
		Postings: NewPostingHandler(s.postings),
		Videos:   NewVideoHandler(s.videos),
		Pets:     NewPetHandler(s.pets),
		Users:    NewUserHandler(s.users),
	})

	t.Cleanup(func() {
		s.postings.AssertExpectations(t)
		s.videos.AssertExpectations(t)
		s.pets.AssertExpectations(t)
		s.users.AssertExpectations(t)
	})

	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

type part struct {
	name     string
	filename string
	content  []byte
}

func field(name, value string) part {
	return part{name: name, content: []byte(value)}
}

func file(name, filename string, content []byte) part {
	return part{name: name, filename: filename, content: content}
}

func multipartRequest(t *testing.T, method, target, requester string, parts ...part) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		var (
			dst io.Writer
			err error
		)
		if p.filename == "" {
			dst, err = w.CreateFormField(p.name)
		} else {
			dst, err = w.CreateFormFile(p.name, p.filename)
		}
		require.NoError(t, err)
		_, err = dst.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if requester != "" {
		req.Header.Set(presentation.RequesterHeader, requester)
	}

	return req
}

func jsonRequest(t *testing.T, method, target, requester string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if requester != "" {
		req.Header.Set(presentation.RequesterHeader, requester)
	}

	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
