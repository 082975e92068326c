package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/sardorbek/darsxona/apps/web/echo"
	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
	"github.com/sardorbek/darsxona/storage/sessionstore"
)

// fakeBackend stands in for the remote REST API. Handlers are registered per
// "METHOD /path" and every hit is counted, so tests can assert not only what
// a page returns but exactly which backend calls it issued.
type fakeBackend struct {
	mu       sync.Mutex
	srv      *httptest.Server
	calls    map[string]int
	handlers map[string]http.HandlerFunc
}

func newFakeBackend() *fakeBackend {
	fb := &fakeBackend{
		calls:    make(map[string]int),
		handlers: make(map[string]http.HandlerFunc),
	}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		fb.mu.Lock()
		fb.calls[key]++
		h := fb.handlers[key]
		fb.mu.Unlock()
		if h == nil {
			http.Error(w, `{"error":"unexpected backend call"}`, http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	return fb
}

func (fb *fakeBackend) handle(method, path string, h http.HandlerFunc) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.handlers[method+" "+path] = h
}

func (fb *fakeBackend) respond(t *testing.T, method, path string, code int, body interface{}) {
	data := marshallObj(t, body)
	fb.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write(data)
	})
}

func (fb *fakeBackend) respondStatus(method, path string, code int) {
	fb.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func (fb *fakeBackend) count(method, path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls[method+" "+path]
}

func (fb *fakeBackend) total() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, c := range fb.calls {
		n += c
	}
	return n
}

func (fb *fakeBackend) Close() {
	fb.srv.Close()
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T, fb *fakeBackend) (Server, *sessionstore.MemoryStore) {
	t.Helper()

	conf := core.NewTestConfig()
	conf.API.BaseURL = fb.srv.URL

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	store := sessionstore.NewMemoryStore()
	logger := nopLogger{}

	server := NewServer(
		&Options{
			Addr:           conf.Server.Addr,
			Conf:           conf,
			Logger:         logger,
			Client:         backend.NewClient(conf, logger),
			Sessions:       store,
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
		},
	)
	return server, store
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

// signIn seeds the store the way a successful login would.
func signIn(t *testing.T, store *sessionstore.MemoryStore, role session.Role, userID int) session.Session {
	t.Helper()
	sess := session.Session{Token: getToken(t, userID), Role: role, UserID: userID}
	req, _ := newRequest(http.MethodPost, session.LoginPath)
	if err := store.Save(httptest.NewRecorder(), req, sess); err != nil {
		t.Fatalf("signIn() failed: %v", err)
	}
	return sess
}

func getToken(t *testing.T, userID int) string {
	t.Helper()
	claims := jwt.StandardClaims{
		Subject:   strconv.Itoa(userID),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}
