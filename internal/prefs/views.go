package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const viewsFile = "views.json"

// ViewPrefs is the console state carried between runs. Sort and page state
// are deliberately absent: they live only for one view session.
type ViewPrefs struct {
	LastView  string         `json:"last_view"`
	PageSizes map[string]int `json:"page_sizes,omitempty"`
}

// PageSize returns the stored page size for view, or def.
func (p ViewPrefs) PageSize(view string, def int) int {
	if n := p.PageSizes[view]; n > 0 {
		return n
	}
	return def
}

func viewsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "northfield")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, viewsFile), nil
}

func SaveViews(p ViewPrefs) error {
	path, err := viewsPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func LoadViews() (ViewPrefs, error) {
	path, err := viewsPath()
	if err != nil {
		return ViewPrefs{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ViewPrefs{}, nil
		}
		return ViewPrefs{}, err
	}
	var p ViewPrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return ViewPrefs{}, err
	}
	return p, nil
}
