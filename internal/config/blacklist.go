package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/models"
)

// Blacklist file syntax: one rule per line, comma-delimited fields.
// A ';' starts a comment; a line-leading comment skips the whole line.
const (
	blacklistDelimiter = ","
	blacklistComment   = ";"
)

// LoadBlacklist loads and parses ~/.frostbar/blacklist.conf.
// A missing file yields an empty rule set.
func LoadBlacklist() (*models.BlacklistRules, error) {
	path, err := GlobalBlacklistFile()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.BlacklistRules{}, nil
		}
		return nil, fmt.Errorf("failed to open blacklist file %s: %w", path, err)
	}
	defer f.Close()

	rules, err := ParseBlacklist(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file %s: %w", path, err)
	}
	return rules, nil
}

// ParseBlacklist reads blacklist rules line by line. Malformed lines are
// logged and discarded; parsing always continues.
func ParseBlacklist(r io.Reader) (*models.BlacklistRules, error) {
	rules := &models.BlacklistRules{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if i := strings.Index(line, blacklistComment); i == 0 {
			continue
		} else if i > 0 {
			line = line[:i]
		}

		if !strings.HasSuffix(line, blacklistDelimiter) {
			line += blacklistDelimiter
		}

		fields := strings.Split(line, blacklistDelimiter)
		// The trailing delimiter leaves one empty field at the end.
		fields = fields[:len(fields)-1]
		if len(fields) == 0 {
			continue
		}

		values := make([]string, 0, len(fields)-1)
		for _, v := range fields[1:] {
			if v != "" {
				values = append(values, v)
			}
		}

		switch strings.ToLower(fields[0]) {
		case "class":
			rules.Classes = append(rules.Classes, values...)
		case "title", "windowtitle":
			rules.Titles = append(rules.Titles, values...)
		case "exename":
			for _, v := range values {
				rules.Filenames = append(rules.Filenames, strings.ToLower(v))
			}
		default:
			log.Warnf("invalid line in window blacklist file: %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
