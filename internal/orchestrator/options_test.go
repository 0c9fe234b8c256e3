package orchestrator

import "testing"

func TestToggleValue(t *testing.T) {
	tg := ToggleValue(true)
	if !tg.Set || !tg.Value {
		t.Errorf("ToggleValue(true) = %+v, want Set and Value", tg)
	}

	var unset Toggle
	if unset.Set {
		t.Error("zero Toggle should read as unset")
	}
}

func TestGeneratorOptions(t *testing.T) {
	cfg := &ResolvedConfig{
		Name:           "demo",
		TargetDir:      "demo",
		Collection:     "standard",
		PackageManager: "npm",
		Prisma:         true,
		UserService:    false,
		Fixtures:       true,
		DryRun:         true,
		SkipInstall:    true,
		SkipGit:        false,
	}

	options := cfg.GeneratorOptions()

	if _, ok := options["skipInstall"]; ok {
		t.Error("skipInstall must not leak into the generator options")
	}

	want := map[string]string{
		"name":           "demo",
		"directory":      "demo",
		"collection":     "standard",
		"packageManager": "npm",
		"prisma":         "true",
		"userService":    "false",
		"fixtures":       "true",
		"dryRun":         "true",
		"skipGit":        "false",
	}
	if len(options) != len(want) {
		t.Errorf("got %d options %v, want %d", len(options), options, len(want))
	}
	for key, value := range want {
		if options[key] != value {
			t.Errorf("options[%q] = %q, want %q", key, options[key], value)
		}
	}
}
