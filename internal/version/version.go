package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Name - имя сервиса в /version и в логах запуска.
const Name = "fluffy-fiesta"

// Заполняются через -ldflags "-X fluffy-fiesta/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo - сведения о сборке.
type VersionInfo struct {
	Name       string `json:"name"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Branch     string `json:"branch,omitempty"`
	CI         string `json:"ci,omitempty"`
	GoVersion  string `json:"goVersion,omitempty"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID - номер сборки: дни от эпохи проекта.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info собирает сведения о сборке. Если коммит не прошит через ldflags,
// берём ревизию из VCS-данных go build.
func Info() VersionInfo {
	info := VersionInfo{
		Name:      Name,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для лога запуска.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("%s build unknown (%s)", info.Name, info.Error)
	}

	return fmt.Sprintf(
		"%s build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.Name,
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
