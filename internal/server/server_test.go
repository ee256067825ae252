// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
	"github.com/davetashner/lakedash/internal/page"
	"github.com/davetashner/lakedash/internal/session"
)

func testOptions() Options {
	tbl := dataset.Builtin()
	return Options{Datasets: tbl, Charts: chart.Builtin(tbl, 0)}
}

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// newClient returns a browser-like client with its own cookie jar.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func get(t *testing.T, c *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func decodeError(t *testing.T, body string) string {
	t.Helper()
	var e map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	return e["error"]
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	opts := testOptions()
	opts.Layout = "carousel"
	_, err = New(opts)
	assert.True(t, errors.Is(err, page.ErrUnknownLayout))

	opts = testOptions()
	opts.Controls = []dispatch.Control{{ID: "fish-btn", Chart: "fish_stock"}}
	_, err = New(opts)
	assert.True(t, errors.Is(err, dispatch.ErrUnboundChart))
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testOptions())
	resp, body := get(t, newClient(t), ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)
}

func TestPages(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	resp, body := get(t, c, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `class="layout-grid"`, "grid is the default layout")

	_, body = get(t, c, ts.URL+"/sections")
	assert.Contains(t, body, `id="agriculture"`)

	_, body = get(t, c, ts.URL+"/sidebar")
	assert.Contains(t, body, dispatch.WelcomeMessage)
}

func TestDefaultLayoutOption(t *testing.T) {
	opts := testOptions()
	opts.Layout = page.LayoutSidebar
	ts := newTestServer(t, opts)

	_, body := get(t, newClient(t), ts.URL+"/")
	assert.Contains(t, body, dispatch.WelcomeMessage)
}

func TestSessionCookie(t *testing.T) {
	ts := newTestServer(t, testOptions())
	resp, err := http.Get(ts.URL + "/sidebar")
	require.NoError(t, err)
	_ = resp.Body.Close()

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// Stateless endpoints do not mint sessions.
	resp, err = http.Get(ts.URL + "/api/charts")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Empty(t, resp.Cookies())
}

func TestSelect_SessionIsolation(t *testing.T) {
	ts := newTestServer(t, testOptions())
	alice, bob := newClient(t), newClient(t)

	resp, err := alice.PostForm(ts.URL+"/select", url.Values{"control": {"crops-btn"}})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "/sidebar", resp.Request.URL.Path, "POST redirects to the sidebar")
	assert.Contains(t, string(body), `data-chart="crop_types"`)
	assert.NotContains(t, string(body), dispatch.WelcomeMessage)

	_, body2 := get(t, bob, ts.URL+"/sidebar")
	assert.Contains(t, body2, dispatch.WelcomeMessage, "another browser keeps its own selection")
	assert.NotContains(t, body2, `data-chart="crop_types"`)

	_, again := get(t, alice, ts.URL+"/sidebar")
	assert.Contains(t, again, `data-chart="crop_types"`, "selection persists across requests")
}

func TestSelect_Sequence(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	_, body := get(t, c, ts.URL+"/select/economic-growth-btn")
	assert.Contains(t, body, `data-chart="economic"`)

	_, body = get(t, c, ts.URL+"/select/suggestions-btn")
	assert.Contains(t, body, `data-chart="suggestions"`)

	_, body = get(t, c, ts.URL+"/select/no-such-btn")
	assert.Contains(t, body, dispatch.WelcomeMessage)
}

func TestSelect_SimultaneousPost(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	resp, err := c.PostForm(ts.URL+"/select", url.Values{"control": {"suggestions-btn", "crops-btn"}})
	require.NoError(t, err)
	_ = resp.Body.Close()

	_, body := get(t, c, ts.URL+"/api/selection")
	var sel selection
	require.NoError(t, json.Unmarshal([]byte(body), &sel))
	assert.Equal(t, "crops-btn", sel.Control, "earlier control in sidebar order wins")
	assert.Equal(t, chart.CropTypes, sel.Chart)
	assert.NotEmpty(t, sel.Title)
}

func TestSelection_Initial(t *testing.T) {
	ts := newTestServer(t, testOptions())
	_, body := get(t, newClient(t), ts.URL+"/api/selection")

	var sel selection
	require.NoError(t, json.Unmarshal([]byte(body), &sel))
	assert.True(t, sel.Placeholder)
	assert.Empty(t, sel.Chart)
}

func TestAPI_Charts(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	_, body := get(t, c, ts.URL+"/api/charts")
	var list []chartSummary
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 13)
	assert.Equal(t, "/charts/demographics.png", list[0].Image)

	resp, body := get(t, c, ts.URL+"/api/charts/"+chart.Demographics)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var spec chart.Spec
	require.NoError(t, json.Unmarshal([]byte(body), &spec))
	assert.Equal(t, 190.0, spec.Total())

	resp, body = get(t, c, ts.URL+"/api/charts/livestock")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body), "unknown chart")
}

func TestAPI_Datasets(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	_, body := get(t, c, ts.URL+"/api/datasets")
	var sets []dataset.Dataset
	require.NoError(t, json.Unmarshal([]byte(body), &sets))
	assert.Len(t, sets, dataset.Builtin().Len())

	resp, body := get(t, c, ts.URL+"/api/datasets/"+dataset.GenderAge)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"Female"`)

	resp, body = get(t, c, ts.URL+"/api/datasets/fish")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body), "unknown dataset")

	_, body = get(t, c, ts.URL+"/api/controls")
	var controls []dispatch.Control
	require.NoError(t, json.Unmarshal([]byte(body), &controls))
	assert.Equal(t, dispatch.DefaultControls(), controls)
}

func TestChartImages(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	resp, body := get(t, c, ts.URL+"/charts/demographics.png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "\x89PNG"))

	resp, body = get(t, c, ts.URL+"/charts/crop_types.svg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<svg")

	resp, _ = get(t, c, ts.URL+"/charts/demographics.gif")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, c, ts.URL+"/charts/livestock.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExport(t *testing.T) {
	ts := newTestServer(t, testOptions())
	c := newClient(t)

	resp, body := get(t, c, ts.URL+"/export/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.True(t, json.Valid([]byte(body)))

	resp, body = get(t, c, ts.URL+"/export/xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "lakedash.xlsx")
	assert.True(t, strings.HasPrefix(body, "PK"), "xlsx is a zip archive")

	resp, _ = get(t, c, ts.URL+"/export/site")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = get(t, c, ts.URL+"/export/pdf")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body), "unknown format")
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t, testOptions())
	resp, body := get(t, newClient(t), ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body), "/nope")
}

func TestServe_StopsOnCancel(t *testing.T) {
	s, err := New(testOptions())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	opts := testOptions()
	opts.Addr = busy.Addr().String()
	s, err := New(opts)
	require.NoError(t, err)
	assert.ErrorContains(t, s.Run(context.Background()), "listen")
}
