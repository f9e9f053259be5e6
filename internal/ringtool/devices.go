package ringtool

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Device is one line of the devices file. Identity and validation beyond
// basic field syntax is left to swift-ring-builder.
type Device struct {
	Region int
	Zone   int
	Host   string
	Name   string
	Weight string
}

// Location returns the search value swift-ring-builder uses to look up the
// device, e.g. "r1z2-storage-0.example.com/d0".
func (d Device) Location() string {
	return fmt.Sprintf("r%dz%d-%s/%s", d.Region, d.Zone, d.Host, d.Name)
}

// Endpoint returns the add value including the server port of the given ring
// type, e.g. "r1z2-storage-0.example.com:6200/d0".
func (d Device) Endpoint(rt RingType) string {
	return fmt.Sprintf("r%dz%d-%s:%d/%s", d.Region, d.Zone, d.Host, rt.Port, d.Name)
}

// ParseDevicesFile reads the whitespace-delimited devices file at path.
func ParseDevicesFile(path string) ([]Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open devices file: %w", err)
	}
	defer f.Close()
	devices, err := ParseDevices(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return devices, nil
}

// ParseDevices parses device lines of the form
// "<region> <zone> <host> <device> <weight>". Blank lines and lines starting
// with '#' are skipped.
func ParseDevices(r io.Reader) ([]Device, error) {
	var devices []Device
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("line %d: expected 5 fields, got %d", lineno, len(fields))
		}
		region, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid region %q", lineno, fields[0])
		}
		zone, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid zone %q", lineno, fields[1])
		}
		if _, err := strconv.ParseFloat(fields[4], 64); err != nil {
			return nil, fmt.Errorf("line %d: invalid weight %q", lineno, fields[4])
		}
		devices = append(devices, Device{
			Region: region,
			Zone:   zone,
			Host:   fields[2],
			Name:   fields[3],
			Weight: fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return devices, nil
}
