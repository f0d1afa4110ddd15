// Package controller maps user interactions to requests against the weather api and
// drives the view with the interpreted responses.
package controller

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"go-weather/internal/client/interpreter"
	"go-weather/internal/client/view"
	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/xmldoc"

	"go.uber.org/zap"
)

var xmlHeaders = map[string]string{"Content-Type": http.MIMEApplicationXML}

type Controller struct {
	client   *http.Client
	renderer *view.Renderer

	wg      sync.WaitGroup
	lastSeq atomic.Uint64
	status  atomic.Int32

	mu      sync.Mutex
	state   view.CityListState
	applied bool
}

func New(client *http.Client, renderer *view.Renderer) *Controller {
	return &Controller{client: client, renderer: renderer}
}

// Dispatch runs the chain for ev on its own goroutine. Chains may overlap.
func (c *Controller) Dispatch(ctx context.Context, ev Event) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.Handle(ctx, ev); err != nil {
			log.Debug("Interaction chain failed", zap.Stringer("event", ev.Kind), zap.Error(err))
		}
	}()
}

// Wait blocks until every dispatched chain has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Handle runs the chain for ev and returns once its last request is answered. The returned error
// is the transport failure, if any; it has already been shown to the user.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventSearch, EventEnterKey:
		return c.search(ctx)
	case EventSave:
		return c.save(ctx)
	case EventDelete:
		return c.delete(ctx, ev.Value)
	case EventEdit:
		return c.edit(ctx, ev.Value)
	case EventView:
		c.renderer.Page().SetCityInput(ev.Value)
		return c.fetchWeather(ctx, ev.Value)
	case EventLoad:
		return c.loadCities(ctx)
	default:
		return fmt.Errorf("unknown event %s", ev.Kind)
	}
}

func (c *Controller) Status() ListStatus {
	return ListStatus(c.status.Load())
}

// State returns the city list of the latest applied load.
func (c *Controller) State() view.CityListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return view.CityListState{
		Cities: append(c.state.Cities[:0:0], c.state.Cities...),
		Seq:    c.state.Seq,
	}
}

func (c *Controller) search(ctx context.Context) error {
	city := strings.TrimSpace(c.renderer.Page().CityInput())
	if city == "" {
		c.renderer.Alert(msg.GetMessage("client.prompt.type-city"))
		return nil
	}
	return c.fetchWeather(ctx, city)
}

func (c *Controller) fetchWeather(ctx context.Context, city string) error {
	resp, err := c.send(ctx, http.GET, "/weather/"+url.PathEscape(city), nil)
	if err != nil {
		return err
	}
	c.renderer.RenderWeather(interpreter.Weather(xmldoc.ParseBytes(resp.Body)))
	return nil
}

func (c *Controller) save(ctx context.Context) error {
	city := strings.TrimSpace(c.renderer.Page().CityInput())
	if city == "" {
		c.renderer.Alert(msg.GetMessage("client.prompt.type-city-save"))
		return nil
	}

	resp, err := c.send(ctx, http.POST, "/cities", model.CityPayload{Name: city})
	if err != nil {
		return err
	}
	if resp.StatusCode != 201 {
		c.renderer.Alert(msg.GetMessage("client.notify.save-failed", resp.Text()))
		return nil
	}

	loadErr := c.loadCities(ctx)
	c.renderer.Alert(msg.GetMessage("client.notify.saved"))
	return loadErr
}

func (c *Controller) delete(ctx context.Context, id string) error {
	if !c.renderer.Confirm(msg.GetMessage("client.prompt.confirm-delete", id)) {
		return nil
	}

	resp, err := c.send(ctx, http.DELETE, "/cities/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		c.renderer.Alert(msg.GetMessage("client.notify.delete-failed"))
		return nil
	}
	return c.loadCities(ctx)
}

func (c *Controller) edit(ctx context.Context, id string) error {
	name, ok := c.renderer.Prompt(msg.GetMessage("client.prompt.new-name"))
	if !ok || name == "" {
		return nil
	}

	resp, err := c.send(ctx, http.PUT, "/cities/"+url.PathEscape(id), model.CityPayload{Name: name})
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		c.renderer.Alert(msg.GetMessage("client.notify.update-failed"))
		return nil
	}
	return c.loadCities(ctx)
}

// loadCities fetches the list and applies it only when no later load has been issued meanwhile.
func (c *Controller) loadCities(ctx context.Context) error {
	seq := c.begin()

	resp, err := c.send(ctx, http.GET, "/cities", nil)
	if err != nil {
		c.settle(seq)
		return err
	}

	cities := interpreter.Cities(xmldoc.ParseBytes(resp.Body))

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.lastSeq.Load() {
		log.Debug("Discarding stale city list", zap.Uint64("seq", seq), zap.Uint64("latest", c.lastSeq.Load()))
		return nil
	}

	c.state = view.CityListState{Cities: cities, Seq: seq}
	c.applied = true
	c.renderer.RenderCityTable(c.state)
	c.status.Store(int32(ListRendered))
	return nil
}

// begin issues the next load number and enters the loading state in one step, so an older
// load can never mark the list as loading after a newer one has rendered it.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	seq := c.lastSeq.Add(1)
	c.status.Store(int32(ListLoading))
	return seq
}

// settle leaves the loading state after a failed load, unless a later load is still running.
func (c *Controller) settle(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.lastSeq.Load() {
		return
	}
	if c.applied {
		c.status.Store(int32(ListRendered))
		return
	}
	c.status.Store(int32(ListIdle))
}

func (c *Controller) send(ctx context.Context, method http.RequestMethod, path string, body any) (*http.Response, error) {
	req := c.client.Request().WithMethod(method).WithPath(path)
	if body != nil {
		req = req.WithBody(body).WithHeaders(xmlHeaders)
	}

	resp, err := req.Execute(ctx)
	if err != nil {
		log.Warn("Request to weather api failed", zap.String("method", string(method)), zap.String("path", path), zap.Error(err))
		c.renderer.Alert(msg.GetMessage("client.notify.network-error", err))
		return nil, err
	}
	return resp, nil
}
