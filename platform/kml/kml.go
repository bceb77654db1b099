// Package kml extracts point coordinates from KML and KMZ files.
// This is part of the platform layer and contains no business logic.
package kml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// LoadPoints reads every coordinate vertex from the KML or KMZ file at
// path. The container format is detected from the file content, not the
// extension. A file yielding no usable coordinates is an error.
func LoadPoints(path string) ([]orb.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if isZip(data) {
		data, err = kmlFromKMZ(data)
		if err != nil {
			return nil, fmt.Errorf("open kmz %s: %w", path, err)
		}
	}

	points, err := ParsePoints(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no coordinates found in %s", path)
	}
	return points, nil
}

func isZip(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] == 'K'
}

func kmlFromKMZ(data []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for _, file := range reader.File {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".kml") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, err
		}
		return content, nil
	}

	return nil, fmt.Errorf("archive contains no kml entry")
}

// ParsePoints scans a KML document for coordinates elements in any
// namespace and returns the unique vertices they contain. Points, line
// strings and polygon rings all contribute their vertices.
func ParsePoints(r io.Reader) ([]orb.Point, error) {
	decoder := xml.NewDecoder(r)

	points := make([]orb.Point, 0, 64)
	seen := make(map[orb.Point]struct{})
	inCoordinates := false
	var buf strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan kml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "coordinates" {
				inCoordinates = true
				buf.Reset()
			}
		case xml.CharData:
			if inCoordinates {
				buf.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local != "coordinates" {
				continue
			}
			inCoordinates = false
			for _, group := range strings.Fields(buf.String()) {
				p, ok := parseGroup(group)
				if !ok {
					continue
				}
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				points = append(points, p)
			}
		}
	}

	return points, nil
}

// parseGroup reads one whitespace-delimited coordinate group. Groups are
// normally "lon,lat[,alt]" with dot decimals; some exports use a comma as
// the decimal separator instead, which turns a lon/lat pair into four or
// more comma fields.
func parseGroup(group string) (orb.Point, bool) {
	fields := strings.Split(group, ",")

	if !strings.Contains(group, ".") && len(fields) >= 4 {
		lon, lonErr := strconv.ParseFloat(fields[0]+"."+fields[1], 64)
		lat, latErr := strconv.ParseFloat(fields[2]+"."+fields[3], 64)
		if lonErr != nil || latErr != nil || !inRange(lon, lat) {
			return orb.Point{}, false
		}
		return orb.Point{lon, lat}, true
	}

	if len(fields) < 2 {
		return orb.Point{}, false
	}
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if lonErr != nil || latErr != nil || !inRange(lon, lat) {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}

func inRange(lon, lat float64) bool {
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
