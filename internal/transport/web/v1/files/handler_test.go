package files

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/file-vault/internal/domain"
)

type fakeFiles struct {
	files map[domain.FileID]domain.File
}

func newFakeFiles(files ...domain.File) *fakeFiles {
	f := &fakeFiles{files: map[domain.FileID]domain.File{}}
	for _, fl := range files {
		f.files[fl.ID] = fl
	}
	return f
}

func (f *fakeFiles) CreateFile(_ context.Context, fl domain.File) (domain.File, error) {
	fl.ID = uuid.New()
	f.files[fl.ID] = fl
	return fl, nil
}

func (f *fakeFiles) FileByID(_ context.Context, id domain.FileID, owner domain.UserID) (domain.File, error) {
	fl, ok := f.files[id]
	if !ok || fl.OwnerID != owner {
		return domain.File{}, domain.ErrNotFound
	}
	return fl, nil
}

func (f *fakeFiles) ParentByID(_ context.Context, id domain.FileID) (domain.File, error) {
	fl, ok := f.files[id]
	if !ok {
		return domain.File{}, domain.ErrNotFound
	}
	return fl, nil
}

func (f *fakeFiles) FilesByParent(_ context.Context, owner domain.UserID, parent *domain.FileID) ([]domain.File, error) {
	var out []domain.File
	for _, fl := range f.files {
		if fl.OwnerID != owner {
			continue
		}
		switch {
		case parent == nil && fl.ParentID == nil:
			out = append(out, fl)
		case parent != nil && fl.ParentID != nil && *fl.ParentID == *parent:
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeFiles) SetPublic(_ context.Context, id domain.FileID, owner domain.UserID, public bool) (domain.File, error) {
	fl, ok := f.files[id]
	if !ok || fl.OwnerID != owner {
		return domain.File{}, domain.ErrNotFound
	}
	fl.Public = public
	f.files[id] = fl
	return fl, nil
}

func (f *fakeFiles) CountFiles(context.Context) (int64, error) { return int64(len(f.files)), nil }

type fakeStorage struct {
	blobs map[string][]byte
}

func newFakeStorage() *fakeStorage { return &fakeStorage{blobs: map[string][]byte{}} }

func (f *fakeStorage) Put(_ context.Context, data []byte) (string, error) {
	key := uuid.NewString()
	f.blobs[key] = data
	return key, nil
}

func (f *fakeStorage) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := f.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeStorage) PutVariant(_ context.Context, key string, width int, data []byte) error {
	f.blobs[fmt.Sprintf("%s_%d", key, width)] = data
	return nil
}

func (f *fakeStorage) GetVariant(ctx context.Context, key string, width int) ([]byte, error) {
	return f.Get(ctx, fmt.Sprintf("%s_%d", key, width))
}

func (f *fakeStorage) Ping(context.Context) error { return nil }

type fakeQueue struct {
	fileJobs []domain.FileJob
	userJobs []domain.UserJob
}

func (q *fakeQueue) EnqueueFile(_ context.Context, j domain.FileJob) error {
	q.fileJobs = append(q.fileJobs, j)
	return nil
}

func (q *fakeQueue) EnqueueUser(_ context.Context, j domain.UserJob) error {
	q.userJobs = append(q.userJobs, j)
	return nil
}

func newHandler(files *fakeFiles, storage *fakeStorage, queue *fakeQueue) *Handler {
	return &Handler{
		Log:     log.New(io.Discard, "", 0),
		Files:   files,
		Storage: storage,
		Queue:   queue,
	}
}

func authed(r *http.Request, u domain.User) *http.Request {
	return r.WithContext(domain.WithUser(r.Context(), u))
}

func postJSON(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/files", bytes.NewReader(b))
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestUpload_ValidationOrder(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New(), Email: "a@b.c"}
	cases := []struct {
		name string
		in   domain.UploadInput
		want string
	}{
		{"no name", domain.UploadInput{Type: "file", Data: "aGk="}, "Missing name"},
		{"no type", domain.UploadInput{Name: "x", Data: "aGk="}, "Missing type"},
		{"bad type", domain.UploadInput{Name: "x", Type: "link", Data: "aGk="}, "Missing type"},
		{"no data", domain.UploadInput{Name: "x", Type: "file"}, "Missing data"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandler(newFakeFiles(), newFakeStorage(), &fakeQueue{})
			rec := httptest.NewRecorder()
			h.Upload(rec, authed(postJSON(t, tc.in), me))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decodeErr(t, rec))
		})
	}
}

func TestUpload_ParentChecks(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	plainFile := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "a.txt", Type: domain.TypeFile}

	cases := []struct {
		name   string
		parent string
		want   string
	}{
		{"garbage id", "not-a-uuid", "Parent not found"},
		{"unknown id", uuid.NewString(), "Parent not found"},
		{"parent is a file", plainFile.ID.String(), "Parent is not a folder"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandler(newFakeFiles(plainFile), newFakeStorage(), &fakeQueue{})
			in := domain.UploadInput{Name: "x", Type: "file", Data: "aGk=", ParentID: tc.parent}
			rec := httptest.NewRecorder()
			h.Upload(rec, authed(postJSON(t, in), me))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decodeErr(t, rec))
		})
	}
}

func TestUpload_FolderSkipsContent(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	storage := newFakeStorage()
	h := newHandler(newFakeFiles(), storage, &fakeQueue{})

	// data у папки игнорируется, на диск ничего не пишем
	in := domain.UploadInput{Name: "docs", Type: "folder", Data: "aGk="}
	rec := httptest.NewRecorder()
	h.Upload(rec, authed(postJSON(t, in), me))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, storage.blobs)

	var out fileOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "folder", out.Type)
	assert.Equal(t, domain.RootParent, out.ParentID)
	assert.Equal(t, me.ID, out.UserID)
}

// Родитель папки проверяется так же, как у файлов: он персистится
// в parent_id, и невалидное значение иначе дошло бы до FK в БД.
func TestUpload_FolderParentChecks(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	folder := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "docs", Type: domain.TypeFolder}
	plainFile := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "a.txt", Type: domain.TypeFile}
	h := newHandler(newFakeFiles(folder, plainFile), newFakeStorage(), &fakeQueue{})

	upload := func(parent string) *httptest.ResponseRecorder {
		in := domain.UploadInput{Name: "nested", Type: "folder", ParentID: parent}
		rec := httptest.NewRecorder()
		h.Upload(rec, authed(postJSON(t, in), me))
		return rec
	}

	// валидный родитель сохраняется — папки вкладываются
	rec := upload(folder.ID.String())
	require.Equal(t, http.StatusCreated, rec.Code)
	var out fileOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, folder.ID.String(), out.ParentID)

	rec = upload(uuid.NewString())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Parent not found", decodeErr(t, rec))

	rec = upload(plainFile.ID.String())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Parent is not a folder", decodeErr(t, rec))
}

func TestUpload_FileStoredAndDecoded(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	storage := newFakeStorage()
	queue := &fakeQueue{}
	h := newHandler(newFakeFiles(), storage, queue)

	content := []byte("hello world")
	in := domain.UploadInput{Name: "hello.txt", Type: "file", Data: base64.StdEncoding.EncodeToString(content)}
	rec := httptest.NewRecorder()
	h.Upload(rec, authed(postJSON(t, in), me))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, storage.blobs, 1)
	for _, b := range storage.blobs {
		assert.Equal(t, content, b)
	}
	// обычный файл в очередь миниатюр не попадает
	assert.Empty(t, queue.fileJobs)
}

func TestUpload_BadBase64(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	h := newHandler(newFakeFiles(), newFakeStorage(), &fakeQueue{})

	in := domain.UploadInput{Name: "x.txt", Type: "file", Data: "%%%not-base64%%%"}
	rec := httptest.NewRecorder()
	h.Upload(rec, authed(postJSON(t, in), me))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeErr(t, rec))
}

func TestUpload_ImageEnqueuesThumbnails(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	queue := &fakeQueue{}
	files := newFakeFiles()
	h := newHandler(files, newFakeStorage(), queue)

	in := domain.UploadInput{Name: "cat.png", Type: "image", Data: base64.StdEncoding.EncodeToString([]byte("png-bytes"))}
	rec := httptest.NewRecorder()
	h.Upload(rec, authed(postJSON(t, in), me))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, queue.fileJobs, 1)
	assert.Equal(t, me.ID, queue.fileJobs[0].UserID)

	var out fileOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, out.ID, queue.fileJobs[0].FileID)
}

func TestShow_OwnerScoped(t *testing.T) {
	t.Parallel()

	owner := domain.User{ID: uuid.New()}
	stranger := domain.User{ID: uuid.New()}
	file := domain.File{ID: uuid.New(), OwnerID: owner.ID, Name: "a.txt", Type: domain.TypeFile}
	h := newHandler(newFakeFiles(file), newFakeStorage(), &fakeQueue{})

	get := func(u domain.User, id string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/files/"+id, nil)
		r.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Show(rec, authed(r, u))
		return rec
	}

	rec := get(owner, file.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var out fileOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, file.ID, out.ID)

	// чужой файл и мусорный id неразличимы
	assert.Equal(t, http.StatusNotFound, get(stranger, file.ID.String()).Code)
	assert.Equal(t, http.StatusNotFound, get(owner, "garbage").Code)
	assert.Equal(t, http.StatusNotFound, get(owner, uuid.NewString()).Code)
}

func TestIndex_ParentFilter(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	folder := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "docs", Type: domain.TypeFolder}
	inRoot := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "root.txt", Type: domain.TypeFile}
	inFolder := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "nested.txt", Type: domain.TypeFile, ParentID: &folder.ID}
	foreign := domain.File{ID: uuid.New(), OwnerID: uuid.New(), Name: "other.txt", Type: domain.TypeFile}

	h := newHandler(newFakeFiles(folder, inRoot, inFolder, foreign), newFakeStorage(), &fakeQueue{})

	list := func(query string) []fileOut {
		r := httptest.NewRequest(http.MethodGet, "/files"+query, nil)
		rec := httptest.NewRecorder()
		h.Index(rec, authed(r, me))
		require.Equal(t, http.StatusOK, rec.Code)
		var out []fileOut
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	root := list("")
	assert.Len(t, root, 2) // folder + root.txt; чужое не видно

	nested := list("?parentId=" + folder.ID.String())
	require.Len(t, nested, 1)
	assert.Equal(t, inFolder.ID, nested[0].ID)

	assert.Len(t, list("?parentId=0"), 2)
	assert.Empty(t, list("?parentId=garbage"))
	assert.Empty(t, list("?parentId="+uuid.NewString()))
}

func TestPublishUnpublish(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	file := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "a.txt", Type: domain.TypeFile}
	h := newHandler(newFakeFiles(file), newFakeStorage(), &fakeQueue{})

	call := func(fn http.HandlerFunc, u domain.User, id string) (*httptest.ResponseRecorder, fileOut) {
		r := httptest.NewRequest(http.MethodPut, "/files/"+id+"/publish", nil)
		r.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		fn(rec, authed(r, u))
		var out fileOut
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		}
		return rec, out
	}

	rec, out := call(h.Publish, me, file.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, out.IsPublic)

	// повтор идемпотентен
	rec, out = call(h.Publish, me, file.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, out.IsPublic)

	rec, out = call(h.Unpublish, me, file.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, out.IsPublic)

	stranger := domain.User{ID: uuid.New()}
	rec, _ = call(h.Publish, stranger, file.ID.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestData(t *testing.T) {
	t.Parallel()

	me := domain.User{ID: uuid.New()}
	storage := newFakeStorage()
	content := []byte("hello world")
	key, err := storage.Put(context.Background(), content)
	require.NoError(t, err)
	require.NoError(t, storage.PutVariant(context.Background(), key, 100, []byte("thumb-100")))

	file := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "hello.txt", Type: domain.TypeFile, StorageKey: key}
	folder := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "docs", Type: domain.TypeFolder}
	noExt := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "README", Type: domain.TypeFile, StorageKey: key}
	img := domain.File{ID: uuid.New(), OwnerID: me.ID, Name: "cat.png", Type: domain.TypeImage, StorageKey: key}

	h := newHandler(newFakeFiles(file, folder, noExt, img), storage, &fakeQueue{})

	get := func(u domain.User, id, query string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/files/"+id+"/data"+query, nil)
		r.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Data(rec, authed(r, u))
		return rec
	}

	rec := get(me, file.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	rec = get(me, folder.ID.String(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A folder doesn't have content", decodeErr(t, rec))

	// без расширения MIME не определить
	assert.Equal(t, http.StatusNotFound, get(me, noExt.ID.String(), "").Code)

	rec = get(me, img.ID.String(), "?size=100")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("thumb-100"), rec.Body.Bytes())

	// миниатюра ещё не сгенерирована
	assert.Equal(t, http.StatusNotFound, get(me, img.ID.String(), "?size=250").Code)
	// недопустимая ширина
	assert.Equal(t, http.StatusNotFound, get(me, img.ID.String(), "?size=300").Code)

	stranger := domain.User{ID: uuid.New()}
	assert.Equal(t, http.StatusNotFound, get(stranger, file.ID.String(), "").Code)
}
