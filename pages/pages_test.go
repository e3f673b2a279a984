package pages

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-park-mail-ru/2019_1_Remastered/drafts"
	"github.com/go-park-mail-ru/2019_1_Remastered/testutils"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetLevel(log.PanicLevel)
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	h, err := New()
	if err != nil {
		t.Fatalf("templates are broken: %v", err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/profile", h.Profile).Methods("GET")
	r.HandleFunc("/create", h.CreateDialog).Methods("GET")
	r.HandleFunc("/create/template", h.ChooseTemplate).Methods("POST")
	r.HandleFunc("/create/details", h.SubmitDetails).Methods("POST")
	r.PathPrefix("/static/").Handler(Static())
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)

	return r
}

func get(r http.Handler, endpoint string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return testutils.MakeRequest(nil, r, "GET", endpoint, cookies, nil, nil)
}

func postForm(r http.Handler, endpoint string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return testutils.MakeRequest(nil, r, "POST", endpoint, cookies,
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		strings.NewReader(form.Encode()))
}

func draftCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range resp.Result().Cookies() {
		if c.Name == DraftCookie {
			return c
		}
	}

	t.Fatalf("no %s cookie in response", DraftCookie)
	return nil
}

func expectContains(t *testing.T, resp *httptest.ResponseRecorder, parts ...string) {
	t.Helper()

	for _, part := range parts {
		if !strings.Contains(resp.Body.String(), part) {
			t.Fatalf("expected body to contain %q, got:\n%s", part, resp.Body.String())
		}
	}
}

func expectRedirect(t *testing.T, resp *httptest.ResponseRecorder, to string) {
	t.Helper()

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", resp.Code, resp.Body.String())
	}
	if loc := resp.Header().Get("Location"); loc != to {
		t.Fatalf("expected redirect to %s, got %s", to, loc)
	}
}

func TestHome(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		endpoint   string
		contains   []string
		notContain []string
	}{
		{
			endpoint: "/",
			contains: []string{"Discover Games", "Neon City Racing", "Ocean Explorer", "2.8K", "2.5M"},
		},
		{
			endpoint:   "/?category=Adventure",
			contains:   []string{"Crystal Kingdom", "Ocean Explorer"},
			notContain: []string{"Neon City Racing", "Space Odyssey"},
		},
		{
			endpoint:   "/?q=cosmic",
			contains:   []string{"Space Odyssey"},
			notContain: []string{"Crystal Kingdom"},
		},
		{
			endpoint: "/?category=RPG",
			contains: []string{"No games found"},
		},
		{
			// неизвестная категория на странице = All
			endpoint: "/?category=Puzzle",
			contains: []string{"Neon City Racing", "Cyberpunk Arena"},
		},
	}

	for i, c := range cases {
		resp := get(r, c.endpoint)
		if resp.Code != http.StatusOK {
			t.Fatalf("[%d] expected 200, got %d", i, resp.Code)
		}
		expectContains(t, resp, c.contains...)
		for _, part := range c.notContain {
			if strings.Contains(resp.Body.String(), part) {
				t.Fatalf("[%d] %s: unexpected %q in body", i, c.endpoint, part)
			}
		}
	}
}

func TestProfilePage(t *testing.T) {
	resp := get(newRouter(t), "/profile")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	expectContains(t, resp, "Alex Doe", "@alex_doe", "Neon City Racing", "Sue")
}

func TestNotFound(t *testing.T) {
	resp := get(newRouter(t), "/nowhere")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	expectContains(t, resp, "404", "Back to games")
}

func TestStatic(t *testing.T) {
	resp := get(newRouter(t), "/static/style.css")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	expectContains(t, resp, ".card")
}

func TestCreateFlow(t *testing.T) {
	drafts.Drafts = drafts.NewMemoryStore(time.Hour)
	r := newRouter(t)

	resp := get(r, "/create")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	expectContains(t, resp, "Step 1 of 2", "Choose a Template", "Racing Track", "Blank Canvas")
	cookie := draftCookie(t, resp)

	// повторный заход не плодит черновики
	resp = get(r, "/create", cookie)
	if len(resp.Result().Cookies()) != 0 {
		t.Fatalf("draft cookie must not be reissued")
	}

	resp = postForm(r, "/create/template", url.Values{}, cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without template, got %d", resp.Code)
	}
	expectContains(t, resp, "Template is required", "Step 1 of 2")

	resp = postForm(r, "/create/template", url.Values{"template": {"racing"}}, cookie)
	expectRedirect(t, resp, "/create")

	resp = get(r, "/create", cookie)
	expectContains(t, resp, "Step 2 of 2", "Game Details")

	resp = postForm(r, "/create/details", url.Values{
		"title":    {""},
		"category": {"racing"},
		"action":   {"create"},
	}, cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without title, got %d", resp.Code)
	}
	expectContains(t, resp, "Title is required")

	// назад с сохранением введённого
	resp = postForm(r, "/create/details", url.Values{
		"title":    {"Drift King"},
		"category": {"racing"},
		"action":   {"back"},
	}, cookie)
	expectRedirect(t, resp, "/create")

	resp = get(r, "/create", cookie)
	expectContains(t, resp, "Step 1 of 2", "template-selected")

	resp = postForm(r, "/create/template", url.Values{"template": {"racing"}}, cookie)
	expectRedirect(t, resp, "/create")

	resp = get(r, "/create", cookie)
	expectContains(t, resp, `value="Drift King"`)

	resp = postForm(r, "/create/details", url.Values{
		"title":       {"Drift King"},
		"description": {"Sideways all the way"},
		"category":    {"racing"},
		"action":      {"create"},
	}, cookie)
	expectRedirect(t, resp, "/")

	cleared := draftCookie(t, resp)
	if cleared.MaxAge >= 0 {
		t.Fatalf("draft cookie must be cleared, got MaxAge %d", cleared.MaxAge)
	}

	if _, err := drafts.Drafts.Get(cookie.Value); err == nil {
		t.Fatalf("submitted draft must be discarded")
	}
}

func TestCreateFlowInvalidCategory(t *testing.T) {
	drafts.Drafts = drafts.NewMemoryStore(time.Hour)
	r := newRouter(t)

	cookie := draftCookie(t, get(r, "/create"))
	expectRedirect(t, postForm(r, "/create/template", url.Values{"template": {"blank"}}, cookie), "/create")

	resp := postForm(r, "/create/details", url.Values{
		"title":    {"Sandbox"},
		"category": {"cooking"},
		"action":   {"create"},
	}, cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	expectContains(t, resp, "Category is invalid")
}

func TestCreatePostWithoutDraft(t *testing.T) {
	drafts.Drafts = drafts.NewMemoryStore(time.Hour)
	r := newRouter(t)

	expectRedirect(t, postForm(r, "/create/template", url.Values{"template": {"racing"}}), "/create")

	gone := &http.Cookie{Name: DraftCookie, Value: "expired"}
	expectRedirect(t, postForm(r, "/create/details", url.Values{"action": {"create"}}, gone), "/create")
}

func TestCreateBackWithInvalidCategory(t *testing.T) {
	drafts.Drafts = drafts.NewMemoryStore(time.Hour)
	r := newRouter(t)

	cookie := draftCookie(t, get(r, "/create"))
	expectRedirect(t, postForm(r, "/create/template", url.Values{"template": {"puzzle"}}, cookie), "/create")

	resp := postForm(r, "/create/details", url.Values{
		"title":    {"Mind Maze"},
		"category": {"cooking"},
		"action":   {"back"},
	}, cookie)
	expectRedirect(t, resp, "/create")

	d, err := drafts.Drafts.Get(cookie.Value)
	if err != nil {
		t.Fatal(err)
	}
	if d.Step != drafts.StepTemplate || d.Title != "Mind Maze" || d.Category != "" {
		t.Fatalf("expected step 1 with title kept and category dropped, got %+v", d)
	}
}
