// Package docker drives the docker CLI as a subprocess. All state lives
// in the docker daemon; this package only shells out, decodes the
// JSON-lines output, and issues prune/remove commands.
package docker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrUnavailable is returned when the docker CLI cannot be reached,
// typically because the daemon is not running.
var ErrUnavailable = errors.New("docker is not available; is the daemon running?")

// Client runs docker subcommands. The zero value is ready to use.
type Client struct{}

// NewClient returns a Client for the docker CLI on PATH.
func NewClient() *Client {
	return &Client{}
}

// run executes a docker subcommand and returns its stdout. A failing
// command with empty stderr is treated as success with empty output;
// the CLI exits non-zero for "nothing to do" in a few subcommands.
func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", fmt.Errorf("failed to execute docker: %w", err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", nil
		}
		return "", fmt.Errorf("docker %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}

// IsAvailable reports whether the docker CLI can talk to a daemon.
func (c *Client) IsAvailable() bool {
	return exec.Command("docker", "version").Run() == nil
}

// DiskUsage queries `docker system df` and returns the parsed snapshot.
func (c *Client) DiskUsage() (DiskUsage, error) {
	out, err := c.run("system", "df", "--format", "{{json .}}")
	if err != nil {
		return DiskUsage{}, err
	}
	return parseDiskUsage(out), nil
}

// flexCount decodes a count that the CLI may emit as either a JSON
// number or a quoted string, depending on version.
type flexCount int

func (f *flexCount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexCount(n)
	return nil
}

// parseDiskUsage decodes the JSON-lines output of `docker system df`.
// Unrecognized rows are skipped; a missing row leaves its category at
// the zero value so totals stay well-defined.
func parseDiskUsage(out string) DiskUsage {
	var du DiskUsage
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row struct {
			Type        string    `json:"Type"`
			Size        string    `json:"Size"`
			Reclaimable string    `json:"Reclaimable"`
			TotalCount  flexCount `json:"TotalCount"`
			Active      flexCount `json:"Active"`
		}
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			continue
		}

		usage := Usage{
			Size:        ParseSize(row.Size),
			Reclaimable: ParseReclaimable(row.Reclaimable),
			Count:       int(row.TotalCount),
			Active:      int(row.Active),
		}

		switch row.Type {
		case "Images":
			du.Images = usage
		case "Containers":
			du.Containers = usage
		case "Local Volumes":
			du.Volumes = usage
		case "Build Cache":
			du.BuildCache = usage
		}
	}
	return du
}

func decodeLines[T any](out string) []T {
	var items []T
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ListImages returns all images known to the daemon.
func (c *Client) ListImages() ([]Image, error) {
	out, err := c.run("images", "--format", "{{json .}}")
	if err != nil {
		return nil, err
	}
	return decodeLines[Image](out), nil
}

// ListContainers returns containers; all includes stopped ones.
func (c *Client) ListContainers(all bool) ([]Container, error) {
	args := []string{"ps", "--format", "{{json .}}"}
	if all {
		args = []string{"ps", "-a", "--format", "{{json .}}"}
	}
	out, err := c.run(args...)
	if err != nil {
		return nil, err
	}
	return decodeLines[Container](out), nil
}

// ListVolumes returns all volumes.
func (c *Client) ListVolumes() ([]Volume, error) {
	out, err := c.run("volume", "ls", "--format", "{{json .}}")
	if err != nil {
		return nil, err
	}
	return decodeLines[Volume](out), nil
}

// ListNetworks returns all networks, including the default ones.
func (c *Client) ListNetworks() ([]Network, error) {
	out, err := c.run("network", "ls", "--format", "{{json .}}")
	if err != nil {
		return nil, err
	}
	return decodeLines[Network](out), nil
}

// PruneContainers removes all stopped containers.
func (c *Client) PruneContainers() error {
	_, err := c.run("container", "prune", "-f")
	return err
}

// PruneImages removes dangling images, or every unused image when all
// is set.
func (c *Client) PruneImages(all bool) error {
	if all {
		_, err := c.run("image", "prune", "-af")
		return err
	}
	_, err := c.run("image", "prune", "-f")
	return err
}

// PruneVolumes removes unused anonymous volumes.
func (c *Client) PruneVolumes() error {
	_, err := c.run("volume", "prune", "-f")
	return err
}

// PruneNetworks removes unused custom networks.
func (c *Client) PruneNetworks() error {
	_, err := c.run("network", "prune", "-f")
	return err
}

// PruneBuildCache clears unreferenced build cache, or all of it when
// all is set.
func (c *Client) PruneBuildCache(all bool) error {
	if all {
		_, err := c.run("builder", "prune", "-af")
		return err
	}
	_, err := c.run("builder", "prune", "-f")
	return err
}

// StopRunningContainers stops every running container. No-op when
// nothing is running.
func (c *Client) StopRunningContainers() error {
	containers, err := c.ListContainers(false)
	if err != nil {
		return err
	}
	if len(containers) == 0 {
		return nil
	}
	args := []string{"stop"}
	for _, ct := range containers {
		args = append(args, ct.ID)
	}
	_, err = c.run(args...)
	return err
}

// RemoveAllContainers force-removes every container, running or not.
func (c *Client) RemoveAllContainers() error {
	containers, err := c.ListContainers(true)
	if err != nil {
		return err
	}
	if len(containers) == 0 {
		return nil
	}
	args := []string{"rm", "-f"}
	for _, ct := range containers {
		args = append(args, ct.ID)
	}
	_, err = c.run(args...)
	return err
}

// RemoveAllImages force-removes every image.
func (c *Client) RemoveAllImages() error {
	images, err := c.ListImages()
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	args := []string{"rmi", "-f"}
	for _, img := range images {
		args = append(args, img.ID)
	}
	_, err = c.run(args...)
	return err
}

// RemoveAllVolumes force-removes every volume, referenced or not.
func (c *Client) RemoveAllVolumes() error {
	volumes, err := c.ListVolumes()
	if err != nil {
		return err
	}
	if len(volumes) == 0 {
		return nil
	}
	args := []string{"volume", "rm", "-f"}
	for _, v := range volumes {
		args = append(args, v.Name)
	}
	_, err = c.run(args...)
	return err
}

// RemoveCustomNetworks removes every network except the defaults the
// daemon owns (bridge, host, none).
func (c *Client) RemoveCustomNetworks() error {
	networks, err := c.ListNetworks()
	if err != nil {
		return err
	}
	var ids []string
	for _, n := range networks {
		if !n.IsDefault() {
			ids = append(ids, n.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	args := append([]string{"network", "rm"}, ids...)
	_, err = c.run(args...)
	return err
}
