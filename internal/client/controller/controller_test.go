package controller

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go-weather/internal/client/view"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

// fakeAPI serves the weather api routes over an in-memory city list.
type fakeAPI struct {
	mu       sync.Mutex
	cities   []entity.City
	nextID   int
	requests []recordedRequest
	status   map[string]int
}

func newFakeAPI(cities ...entity.City) *fakeAPI {
	return &fakeAPI{cities: cities, nextID: len(cities) + 1, status: map[string]int{}}
}

func (f *fakeAPI) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{
		method:      r.Method,
		path:        r.URL.EscapedPath(),
		contentType: r.Header.Get("Content-Type"),
		body:        string(body),
	})

	w.Header().Set("Content-Type", "application/xml")
	if status, ok := f.status[r.Method+" "+r.URL.Path]; ok {
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, "<error><message>rejected</message></error>")
		return
	}

	switch {
	case r.Method == nethttp.MethodGet && strings.HasPrefix(r.URL.Path, "/weather/"):
		city := strings.TrimPrefix(r.URL.Path, "/weather/")
		if city == "Atlantis" {
			w.WriteHeader(nethttp.StatusBadGateway)
			_, _ = fmt.Fprint(w, "<error><message>OpenWeather error: 404</message></error>")
			return
		}
		_, _ = fmt.Fprintf(w, "<weather><country>XX</country><city>%s</city><temperature>20</temperature>"+
			"<description>clear sky</description><humidity>50</humidity><wind_speed>2.5</wind_speed></weather>", city)

	case r.Method == nethttp.MethodGet && r.URL.Path == "/cities":
		out, _ := xml.Marshal(model.NewCitiesXML(f.cities))
		_, _ = w.Write(out)

	case r.Method == nethttp.MethodPost && r.URL.Path == "/cities":
		var payload model.CityPayload
		if err := xml.Unmarshal(body, &payload); err != nil || payload.Name == "" {
			w.WriteHeader(nethttp.StatusBadRequest)
			_, _ = fmt.Fprint(w, "<error><message>Invalid XML payload: Missing name element</message></error>")
			return
		}
		id := fmt.Sprint(f.nextID)
		f.nextID++
		f.cities = append(f.cities, entity.City{ID: id, Name: payload.Name})
		w.WriteHeader(nethttp.StatusCreated)
		_, _ = fmt.Fprintf(w, "<result><message>City added</message><id>%s</id></result>", id)

	case r.Method == nethttp.MethodPut && strings.HasPrefix(r.URL.Path, "/cities/"):
		var payload model.CityPayload
		_ = xml.Unmarshal(body, &payload)
		id := strings.TrimPrefix(r.URL.Path, "/cities/")
		for i := range f.cities {
			if f.cities[i].ID == id {
				f.cities[i].Name = payload.Name
				_, _ = fmt.Fprint(w, "<result><message>City updated</message></result>")
				return
			}
		}
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = fmt.Fprint(w, "<error><message>City not found</message></error>")

	case r.Method == nethttp.MethodDelete && strings.HasPrefix(r.URL.Path, "/cities/"):
		id := strings.TrimPrefix(r.URL.Path, "/cities/")
		for i := range f.cities {
			if f.cities[i].ID == id {
				f.cities = append(f.cities[:i], f.cities[i+1:]...)
				_, _ = fmt.Fprint(w, "<result><message>City deleted</message></result>")
				return
			}
		}
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = fmt.Fprint(w, "<error><message>City not found</message></error>")

	default:
		w.WriteHeader(nethttp.StatusNotFound)
	}
}

func (f *fakeAPI) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newController(t *testing.T, handler nethttp.Handler) (*Controller, *view.MemoryPage) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	page := view.NewMemoryPage()
	client := http.NewHttpClient(srv.URL, http.ClientOptions{})
	return New(client, view.NewRenderer(page, page)), page
}

func names(rows []view.CityRow) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Name)
	}
	return out
}

func TestSearchRendersWeather(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	c, page := newController(t, api)
	page.SetCityInput("  São Paulo ")

	require.NoError(t, c.Handle(context.Background(), Search()))

	panel := page.WeatherPanel()
	assert.True(t, panel.Visible)
	assert.Equal(t, "São Paulo, XX", panel.Heading)
	assert.Equal(t, "20°C — clear sky", panel.Summary)
	assert.Equal(t, "Humidity: 50% • Wind: 2.5 m/s", panel.Details)
	assert.Empty(t, page.Alerts())

	requests := api.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/weather/S%C3%A3o%20Paulo", requests[0].path)
}

func TestSearchErrorAlertsAndKeepsPanel(t *testing.T) {
	t.Parallel()

	c, page := newController(t, newFakeAPI())
	ctx := context.Background()

	page.SetCityInput("Paris")
	require.NoError(t, c.Handle(ctx, EnterKey()))
	page.SetCityInput("Atlantis")
	require.NoError(t, c.Handle(ctx, EnterKey()))

	assert.Equal(t, []string{"Error: OpenWeather error: 404"}, page.Alerts())
	assert.Equal(t, "Paris, XX", page.WeatherPanel().Heading)
}

func TestBlankInputIssuesNoRequest(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	c, page := newController(t, api)
	page.SetCityInput("   ")

	require.NoError(t, c.Handle(context.Background(), Search()))
	require.NoError(t, c.Handle(context.Background(), Save()))

	assert.Equal(t, []string{"Type a city name", "Type a city name to save"}, page.Alerts())
	assert.Empty(t, api.Requests())
}

func TestSaveReloadsThenNotifies(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(entity.City{ID: "1", Name: "Paris"})
	c, page := newController(t, api)
	page.SetCityInput("R&D Town")

	require.NoError(t, c.Handle(context.Background(), Save()))

	assert.Equal(t, []string{"City saved"}, page.Alerts())
	assert.Equal(t, []string{"Paris", "R&D Town"}, names(page.Rows()))
	assert.Equal(t, ListRendered, c.Status())

	requests := api.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, nethttp.MethodPost, requests[0].method)
	assert.Equal(t, "application/xml", requests[0].contentType)
	assert.Equal(t, "<city><name>R&amp;D Town</name></city>", requests[0].body)
	assert.Equal(t, "/cities", requests[1].path)
}

func TestSaveFailureShowsBody(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.status["POST /cities"] = nethttp.StatusInternalServerError
	c, page := newController(t, api)
	page.SetCityInput("Paris")

	require.NoError(t, c.Handle(context.Background(), Save()))

	assert.Equal(t, []string{"Failed to save:\n<error><message>rejected</message></error>"}, page.Alerts())
	assert.Len(t, api.Requests(), 1)
	assert.Equal(t, ListIdle, c.Status())
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(entity.City{ID: "1", Name: "Paris"}, entity.City{ID: "2", Name: "Rome"})
	c, page := newController(t, api)
	ctx := context.Background()

	require.NoError(t, c.Handle(ctx, Delete("1")))
	assert.Equal(t, []string{"Delete city id 1?"}, page.Asked())
	assert.Empty(t, api.Requests())

	page.QueueConfirm(true)
	require.NoError(t, c.Handle(ctx, Delete("1")))
	assert.Equal(t, []string{"Rome"}, names(page.Rows()))

	page.QueueConfirm(true)
	require.NoError(t, c.Handle(ctx, Delete("9")))
	assert.Equal(t, []string{"Delete failed"}, page.Alerts())
	assert.Equal(t, 1, page.RowRenders())
}

func TestDeleteServerErrorKeepsRows(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(entity.City{ID: "1", Name: "Paris"}, entity.City{ID: "2", Name: "Rome"})
	api.status["DELETE /cities/1"] = nethttp.StatusInternalServerError
	c, page := newController(t, api)
	ctx := context.Background()

	require.NoError(t, c.Handle(ctx, Load()))
	page.QueueConfirm(true)
	require.NoError(t, c.Handle(ctx, Delete("1")))

	assert.Equal(t, []string{"Delete failed"}, page.Alerts())
	assert.Equal(t, 1, page.RowRenders())
	assert.Equal(t, []string{"Paris", "Rome"}, names(page.Rows()))

	requests := api.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, nethttp.MethodDelete, requests[1].method)
	assert.Equal(t, ListRendered, c.Status())
}

func TestEditPromptsForName(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(entity.City{ID: "1", Name: "Pariss"})
	c, page := newController(t, api)
	ctx := context.Background()

	require.NoError(t, c.Handle(ctx, Edit("1")))
	page.QueuePrompt("", true)
	require.NoError(t, c.Handle(ctx, Edit("1")))
	assert.Empty(t, api.Requests())

	page.QueuePrompt("Paris", true)
	require.NoError(t, c.Handle(ctx, Edit("1")))
	assert.Equal(t, []string{"Paris"}, names(page.Rows()))

	requests := api.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, nethttp.MethodPut, requests[0].method)
	assert.Equal(t, "/cities/1", requests[0].path)
	assert.Equal(t, "<city><name>Paris</name></city>", requests[0].body)

	page.QueuePrompt("Lyon", true)
	require.NoError(t, c.Handle(ctx, Edit("7")))
	assert.Equal(t, []string{"Update failed"}, page.Alerts())
}

func TestViewFillsInputAndSearches(t *testing.T) {
	t.Parallel()

	c, page := newController(t, newFakeAPI())

	require.NoError(t, c.Handle(context.Background(), View("Oslo")))

	assert.Equal(t, "Oslo", page.CityInput())
	assert.Equal(t, "Oslo, XX", page.WeatherPanel().Heading)
}

func TestLoadRendersCities(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(entity.City{ID: "4", Name: "Lisbon"}, entity.City{ID: "7", Name: "Oslo"})
	c, page := newController(t, api)
	assert.Equal(t, ListIdle, c.Status())

	c.Dispatch(context.Background(), Load())
	c.Wait()

	assert.Equal(t, ListRendered, c.Status())
	state := c.State()
	assert.Equal(t, uint64(1), state.Seq)
	assert.Equal(t, []entity.City{{ID: "4", Name: "Lisbon"}, {ID: "7", Name: "Oslo"}}, state.Cities)

	rows := page.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, view.Action{Kind: view.ActionDelete, Value: "7"}, rows[1].Actions[1])
}

func TestStaleListLoadIsDiscarded(t *testing.T) {
	t.Parallel()

	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	handler := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		w.Header().Set("Content-Type", "application/xml")
		if n == 1 {
			close(firstArrived)
			<-release
			_, _ = fmt.Fprint(w, `<cities><city id="1"><name>Old</name></city></cities>`)
			return
		}
		_, _ = fmt.Fprint(w, `<cities><city id="1"><name>New</name></city><city id="2"><name>Newer</name></city></cities>`)
	})

	c, page := newController(t, handler)
	ctx := context.Background()

	c.Dispatch(ctx, Load())
	<-firstArrived
	c.Dispatch(ctx, Load())

	require.Eventually(t, func() bool { return page.RowRenders() == 1 }, 2*time.Second, 5*time.Millisecond)
	close(release)
	c.Wait()

	assert.Equal(t, 1, page.RowRenders())
	assert.Equal(t, []string{"New", "Newer"}, names(page.Rows()))
	assert.Equal(t, uint64(2), c.State().Seq)
	assert.Equal(t, ListRendered, c.Status())
}

func TestOverlappingLoadsSettleRendered(t *testing.T) {
	t.Parallel()

	const loads = 30
	c, page := newController(t, newFakeAPI(entity.City{ID: "1", Name: "Paris"}))
	ctx := context.Background()

	for round := 1; round <= 50; round++ {
		for i := 0; i < loads; i++ {
			c.Dispatch(ctx, Load())
		}
		c.Wait()

		require.Equal(t, ListRendered, c.Status(), "round %d", round)
		require.Equal(t, uint64(round*loads), c.State().Seq, "round %d", round)
	}
	assert.Equal(t, []string{"Paris"}, names(page.Rows()))
}

func TestNetworkErrorIsAlerted(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	page := view.NewMemoryPage()
	client := http.NewHttpClient("http://"+addr, http.ClientOptions{ConnectionTimeout: time.Second})
	c := New(client, view.NewRenderer(page, page))

	err = c.Handle(context.Background(), Load())

	assert.ErrorIs(t, err, http.ErrTransport)
	require.Len(t, page.Alerts(), 1)
	assert.True(t, strings.HasPrefix(page.Alerts()[0], "Network error: "))
	assert.Equal(t, ListIdle, c.Status())
	assert.Zero(t, page.RowRenders())
}

func TestUnknownEvent(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, newFakeAPI())
	assert.Error(t, c.Handle(context.Background(), Event{Kind: EventKind(42)}))
}
