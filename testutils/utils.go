package testutils

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// Case один запрос к хендлеру и ожидаемый ответ.
// Если задан ExpectedContains, тело проверяется на вхождение подстрок,
// иначе сравнивается целиком с ExpectedBody.
type Case struct {
	Payload          []byte
	ExpectedCode     int
	ExpectedBody     string
	ExpectedContains []string
	Method           string
	Endpoint         string
	Pattern          string
	Cookies          []*http.Cookie
	Headers          map[string]string
	Function         http.HandlerFunc
	Context          context.Context
}

func MakeRequest(ctx context.Context, handler http.Handler, method, endpoint string, cookies []*http.Cookie,
	headers map[string]string, body io.Reader) *httptest.ResponseRecorder {

	req, _ := http.NewRequest(method, endpoint, body)
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func RunAPITest(t *testing.T, i int, c *Case) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc(c.Pattern, c.Function).Methods(c.Method)
	if c.Endpoint == "" {
		c.Endpoint = c.Pattern
	}
	resp := MakeRequest(c.Context, r, c.Method, c.Endpoint,
		c.Cookies, c.Headers, bytes.NewBuffer(c.Payload))
	if resp.Code != c.ExpectedCode {
		t.Fatalf("\n[%d] Expected response code %d Got %d\n\n[%d] Expected response:\n %s\n Got:\n %s\n",
			i, c.ExpectedCode, resp.Code, i, c.ExpectedBody, resp.Body.String())
	}

	if len(c.ExpectedContains) != 0 {
		for _, part := range c.ExpectedContains {
			if !strings.Contains(resp.Body.String(), part) {
				t.Fatalf("\n[%d] Expected response to contain:\n %s\n Got:\n %s\n", i, part, resp.Body.String())
			}
		}
		return resp
	}

	if resp.Body.String() != c.ExpectedBody {
		t.Fatalf("\n[%d] Expected response:\n %s\n Got:\n %s\n", i, c.ExpectedBody, resp.Body.String())
	}

	return resp
}

func RunTableAPITests(t *testing.T, cases []*Case) {
	t.Helper()

	for i, c := range cases {
		RunAPITest(t, i, c)
	}
}
