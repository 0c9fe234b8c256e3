package generator

import (
	"fmt"
	"strconv"
)

// TemplateData holds all template variables available to collection templates.
type TemplateData struct {
	Name           string // e.g., "order-api"
	Description    string // Human-readable description
	Version        string // Semver for the generated package.json
	PackageManager string // "npm", "yarn" or "pnpm"
	Prisma         bool
	UserService    bool
	Fixtures       bool
}

// DataFromOptions builds a TemplateData from a resolved option map. Boolean
// options arrive as strconv-formatted strings; missing or unparsable values
// read as false.
func DataFromOptions(options map[string]string) *TemplateData {
	d := &TemplateData{
		Name:           options["name"],
		Version:        "0.0.1",
		PackageManager: options["packageManager"],
		Prisma:         boolOption(options, "prisma"),
		UserService:    boolOption(options, "userService"),
		Fixtures:       boolOption(options, "fixtures"),
	}
	d.Description = fmt.Sprintf("%s NestJS service", d.Name)
	return d
}

// RunCommand returns the package manager invocation for a script, e.g.
// "npm run start:dev" or "yarn start:dev".
func (d *TemplateData) RunCommand(script string) string {
	if d.PackageManager == "yarn" {
		return "yarn " + script
	}
	return d.PackageManager + " run " + script
}

func boolOption(options map[string]string, key string) bool {
	v, err := strconv.ParseBool(options[key])
	if err != nil {
		return false
	}
	return v
}
