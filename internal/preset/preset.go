// Package preset holds the closed set of supported project presets.
//
// A preset is a named, pre-curated bundle of dependency declarations and
// metadata that seeds the generated manifest. Membership is closed and
// explicit: lookup either returns a registered bundle or fails, never a
// fuzzy match or a silent default.
package preset

import (
	"fmt"
)

// ErrUnknownPreset is returned when a preset key is not registered.
var ErrUnknownPreset = fmt.Errorf("unknown preset")

// Bundle is the in-memory record backing one preset entry.
type Bundle struct {
	// Key identifies the preset (e.g. "cli-tool")
	Key string

	// Description is the human-readable summary shown in menus
	Description string

	// Dependencies are the runtime dependencies, in curated order
	Dependencies []string

	// DevDependencies are the development dependencies, in curated order
	DevDependencies []string

	// EntryPoint, when set, is the console-script suffix relative to the
	// package path (e.g. "main:app")
	EntryPoint string
}

var fastapiDeps = []string{
	"fastapi-cli>=0.0.16,<0.1.0",
	"pydantic>=2.12.5,<3.0.0",
	"pydantic-settings>=2.12.0,<3.0.0",
	"psycopg2-binary>=2.9.11,<3.0.0",
	"sqlalchemy>=2.0.32,<3.0.0",
	"alembic>=1.17.2,<2.0.0",
	"asyncpg>=0.31.0,<1.0.0",
	"python-multipart>=0.0.20,<0.1.0",
	"pyjwt>=2.10.1,<3.0.0",
	"pwdlib[argon2]>=0.3.0,<0.4.0",
	"uuid6>=2025.0.1,<2026.0.0",
	"slowapi>=0.1.9,<0.2.0",
	"redis>=7.1.0,<8.0.0",
	"structlog>=25.5.0,<26.0.0",
	"gunicorn>=23.0.0,<24.0.0",
	"uvicorn[standard]>=0.38.0,<0.39.0",
}

var fastapiDevDeps = []string{
	"pytest>=9.0.2,<10.0.0",
	"pytest-asyncio>=1.3.0,<2.0.0",
	"pytest-cov>=7.0.0,<8.0.0",
	"httpx>=0.28.1,<0.29.0",
	"aiosqlite>=0.21.0,<0.22.0",
	"asgi-lifespan>=2.1.0,<3.0.0",
	"mypy>=1.19.0,<2.0.0",
	"types-redis>=4.6.0.20241004,<5.0.0",
	"ruff>=0.14.8,<0.15.0",
	"ty>=0.0.1a32,<0.1.0",
	"pre-commit>=4.5.0,<5.0.0",
	"pylint>=4.0.4,<5.0.0",
	"pylint-pydantic>=0.4.1,<0.5.0",
	"pylint-per-file-ignores>=3.2.0,<4.0.0",
}

var libraryDevDeps = []string{
	"pytest>=9.0.2,<10.0.0",
	"pytest-cov>=7.0.0,<8.0.0",
	"httpx>=0.28.1,<0.29.0",
	"mypy>=1.19.0,<2.0.0",
	"ruff>=0.14.8,<0.15.0",
	"ty>=0.0.1a32,<0.1.0",
	"pre-commit>=4.5.0,<5.0.0",
	"pylint>=4.0.4,<5.0.0",
}

var cliDeps = []string{
	"typer>=0.20.0,<0.21.0",
	"rich>=14.2.0,<15.0.0",
}

var cliDevDeps = []string{
	"pytest>=9.0.2,<10.0.0",
	"pytest-cov>=7.0.0,<8.0.0",
	"mypy>=1.19.0,<2.0.0",
	"ruff>=0.14.8,<0.15.0",
	"ty>=0.0.1a32,<0.1.0",
	"pre-commit>=4.5.0,<5.0.0",
	"pylint>=4.0.4,<5.0.0",
}

// displayOrder fixes the order presets appear in menus and listings.
var displayOrder = []string{"fastapi-backend", "library", "cli-tool"}

var registry = map[string]*Bundle{
	"fastapi-backend": {
		Key:             "fastapi-backend",
		Description:     "FastAPI async backend with SQLAlchemy + JWT",
		Dependencies:    fastapiDeps,
		DevDependencies: fastapiDevDeps,
	},
	"library": {
		Key:             "library",
		Description:     "Python library (no runtime deps)",
		Dependencies:    []string{},
		DevDependencies: libraryDevDeps,
	},
	"cli-tool": {
		Key:             "cli-tool",
		Description:     "CLI tool with Typer + Rich",
		Dependencies:    cliDeps,
		DevDependencies: cliDevDeps,
		EntryPoint:      "main:app",
	},
}

// Resolve looks up a preset bundle by key.
func Resolve(key string) (*Bundle, error) {
	bundle, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownPreset, key, joinNames())
	}
	return bundle, nil
}

// Names returns the registered preset keys in display order.
func Names() []string {
	names := make([]string, len(displayOrder))
	copy(names, displayOrder)
	return names
}

func joinNames() string {
	out := ""
	for i, name := range displayOrder {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
