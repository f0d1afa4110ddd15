package db

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// XMLFileCityGateway keeps the saved cities in a single XML file:
//
//	<cities><city id="1"><name>Paris</name></city></cities>
//
// Every operation reads the whole file and mutations rewrite it atomically.
type XMLFileCityGateway struct {
	path string
	mu   sync.Mutex
}

var _ CityGateway = (*XMLFileCityGateway)(nil)

func NewXMLFileCityGateway(path string) *XMLFileCityGateway {
	return &XMLFileCityGateway{path: path}
}

func (gateway *XMLFileCityGateway) FindAll(_ context.Context) ([]entity.City, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	doc, err := gateway.read()
	if err != nil {
		return nil, err
	}
	return doc.ToEntities(), nil
}

// Create appends a city with id max(existing)+1.
func (gateway *XMLFileCityGateway) Create(_ context.Context, name string) (*entity.City, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	doc, err := gateway.read()
	if err != nil {
		return nil, err
	}

	city := model.CityXML{ID: strconv.Itoa(nextID(doc.Cities)), Name: name}
	doc.Cities = append(doc.Cities, city)

	if err := gateway.write(doc); err != nil {
		return nil, err
	}
	return &entity.City{ID: city.ID, Name: city.Name}, nil
}

func (gateway *XMLFileCityGateway) UpdateByID(_ context.Context, id string, name string) (*entity.City, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	doc, err := gateway.read()
	if err != nil {
		return nil, err
	}

	for i := range doc.Cities {
		if doc.Cities[i].ID == id {
			doc.Cities[i].Name = name
			if err := gateway.write(doc); err != nil {
				return nil, err
			}
			return &entity.City{ID: id, Name: name}, nil
		}
	}
	return nil, ErrNotFound
}

func (gateway *XMLFileCityGateway) DeleteByID(_ context.Context, id string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	doc, err := gateway.read()
	if err != nil {
		return err
	}

	kept := doc.Cities[:0]
	for _, c := range doc.Cities {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(doc.Cities) {
		return ErrNotFound
	}
	doc.Cities = kept
	return gateway.write(doc)
}

func (gateway *XMLFileCityGateway) Health(_ context.Context) model.ComponentHealthStatus {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if _, err := gateway.read(); err != nil {
		return model.ComponentHealthStatus{Status: model.StatusDown, Message: err.Error()}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Message: gateway.path}
}

// read loads the file, creating an empty collection on first use.
func (gateway *XMLFileCityGateway) read() (model.CitiesXML, error) {
	var doc model.CitiesXML

	raw, err := os.ReadFile(gateway.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, gateway.write(doc)
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read %s: %w", gateway.path, err)
	}

	if err := xml.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse %s: %w", gateway.path, err)
	}
	return doc, nil
}

// write replaces the file through a temporary sibling so readers never see a partial document.
func (gateway *XMLFileCityGateway) write(doc model.CitiesXML) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cities: %w", err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')

	dir := filepath.Dir(gateway.path)
	tmp, err := os.CreateTemp(dir, ".cities-*.xml")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write cities: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cities: %w", err)
	}
	if err := os.Rename(tmp.Name(), gateway.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", gateway.path, err)
	}
	return nil
}

// nextID returns one more than the largest numeric id, or 1 for an empty list.
func nextID(cities []model.CityXML) int {
	highest := 0
	for _, c := range cities {
		if n, err := strconv.Atoi(c.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}
