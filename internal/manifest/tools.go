package manifest

import "fmt"

// RuffConfig is the formatter/linter section.
type RuffConfig struct {
	TargetVersion string   `toml:"target-version"`
	LineLength    int      `toml:"line-length"`
	Src           []string `toml:"src"`
	Exclude       []string `toml:"exclude"`
	Lint          RuffLint `toml:"lint"`
}

type RuffLint struct {
	Select         []string            `toml:"select"`
	Ignore         []string            `toml:"ignore"`
	PerFileIgnores map[string][]string `toml:"per-file-ignores"`
}

// MypyConfig is the primary type checker section.
type MypyConfig struct {
	PythonVersion          string         `toml:"python_version"`
	Strict                 bool           `toml:"strict"`
	WarnReturnAny          bool           `toml:"warn_return_any"`
	WarnUnusedIgnores      bool           `toml:"warn_unused_ignores"`
	DisallowUntypedDefs    bool           `toml:"disallow_untyped_defs"`
	DisallowIncompleteDefs bool           `toml:"disallow_incomplete_defs"`
	Plugins                []string       `toml:"plugins"`
	Exclude                []string       `toml:"exclude"`
	Overrides              []MypyOverride `toml:"overrides"`
}

type MypyOverride struct {
	Module               []string `toml:"module"`
	IgnoreErrors         bool     `toml:"ignore_errors,omitempty"`
	DisableErrorCode     []string `toml:"disable_error_code,omitempty"`
	IgnoreMissingImports bool     `toml:"ignore_missing_imports,omitempty"`
	ImplicitReexport     bool     `toml:"implicit_reexport,omitempty"`
}

// PydanticMypyConfig is the pydantic plugin block for mypy.
type PydanticMypyConfig struct {
	InitForbidExtra            bool `toml:"init_forbid_extra"`
	InitTyped                  bool `toml:"init_typed"`
	WarnRequiredDynamicAliases bool `toml:"warn_required_dynamic_aliases"`
}

// PylintConfig is the secondary linter section.
type PylintConfig struct {
	Main            PylintMain            `toml:"main"`
	MessagesControl PylintMessagesControl `toml:"messages_control"`
	PerFileIgnores  map[string]string     `toml:"pylint-per-file-ignores"`
	Format          PylintFormat          `toml:"format"`
	Design          PylintDesign          `toml:"design"`
}

type PylintMain struct {
	PyVersion      string   `toml:"py-version"`
	Jobs           int      `toml:"jobs"`
	LoadPlugins    []string `toml:"load-plugins"`
	Persistent     bool     `toml:"persistent"`
	SuggestionMode bool     `toml:"suggestion-mode"`
	Ignore         []string `toml:"ignore"`
	IgnorePaths    []string `toml:"ignore-paths"`
}

type PylintMessagesControl struct {
	Disable []string `toml:"disable"`
}

type PylintFormat struct {
	MaxLineLength int `toml:"max-line-length"`
}

type PylintDesign struct {
	MaxArgs       int `toml:"max-args"`
	MaxAttributes int `toml:"max-attributes"`
	MaxBranches   int `toml:"max-branches"`
	MaxLocals     int `toml:"max-locals"`
	MaxStatements int `toml:"max-statements"`
}

// PytestConfig is the test runner section.
type PytestConfig struct {
	IniOptions PytestIniOptions `toml:"ini_options"`
}

type PytestIniOptions struct {
	AsyncioMode                    string   `toml:"asyncio_mode"`
	AsyncioDefaultFixtureLoopScope string   `toml:"asyncio_default_fixture_loop_scope"`
	Testpaths                      []string `toml:"testpaths"`
	Addopts                        string   `toml:"addopts"`
	Filterwarnings                 []string `toml:"filterwarnings"`
}

// CoverageConfig is the coverage section.
type CoverageConfig struct {
	Run    CoverageRun    `toml:"run"`
	Report CoverageReport `toml:"report"`
}

type CoverageRun struct {
	Branch bool     `toml:"branch"`
	Source []string `toml:"source"`
}

type CoverageReport struct {
	ExcludeLines []string `toml:"exclude_lines"`
}

// TyConfig is the alternate type checker section.
type TyConfig struct {
	Src         TySrc             `toml:"src"`
	Environment TyEnvironment     `toml:"environment"`
	Rules       map[string]string `toml:"rules"`
	Overrides   []TyOverride      `toml:"overrides"`
	Terminal    TyTerminal        `toml:"terminal"`
}

type TySrc struct {
	Include            []string `toml:"include"`
	Exclude            []string `toml:"exclude"`
	RespectIgnoreFiles bool     `toml:"respect-ignore-files"`
}

type TyEnvironment struct {
	PythonVersion string   `toml:"python-version"`
	Root          []string `toml:"root"`
	Python        string   `toml:"python"`
}

type TyOverride struct {
	Include []string          `toml:"include"`
	Rules   map[string]string `toml:"rules"`
}

type TyTerminal struct {
	ErrorOnWarning bool   `toml:"error-on-warning"`
	OutputFormat   string `toml:"output-format"`
}

// The tool sections below are fixed templates: only path-shaped fields vary,
// and they vary solely with the package path.

func ruffConfig(packagePath string) RuffConfig {
	return RuffConfig{
		TargetVersion: "py312",
		LineLength:    88,
		Src:           []string{packagePath},
		Exclude:       []string{"alembic"},
		Lint: RuffLint{
			Select: []string{
				"E", "W", "F", "B", "C4", "UP", "ARG", "SIM",
				"PTH", "RUF", "ASYNC", "S", "N",
			},
			Ignore: []string{
				"E501", "B008", "S101", "S104", "S105", "ARG001",
				"E712", "N999", "N818", "UP046", "RUF005",
			},
			PerFileIgnores: map[string][]string{
				"tests/**/*.py": {"S101", "ARG001"},
				"conftest.py":   {"S107"},
				fmt.Sprintf("%s/core/rate_limit.py", packagePath): {"S110"},
				fmt.Sprintf("%s/config.py", packagePath):          {"F401"},
				fmt.Sprintf("%s/schemas/**/*.py", packagePath):    {"RUF012"},
			},
		},
	}
}

func mypyConfig(packagePath string) MypyConfig {
	return MypyConfig{
		PythonVersion:          "3.12",
		Strict:                 true,
		WarnReturnAny:          true,
		WarnUnusedIgnores:      true,
		DisallowUntypedDefs:    true,
		DisallowIncompleteDefs: true,
		Plugins:                []string{"pydantic.mypy"},
		Exclude:                []string{"alembic"},
		Overrides: []MypyOverride{
			{
				Module:       []string{"tests.*", "conftest"},
				IgnoreErrors: true,
			},
			{
				Module:           []string{fmt.Sprintf("%s.core.logging", packagePath)},
				DisableErrorCode: []string{"no-any-return"},
			},
			{
				Module: []string{
					"uuid6", "structlog", "structlog.*",
					"pwdlib", "slowapi", "slowapi.*",
				},
				IgnoreMissingImports: true,
			},
			{
				Module:           []string{fmt.Sprintf("%s.config", packagePath)},
				ImplicitReexport: true,
			},
			{
				Module: []string{
					fmt.Sprintf("%s.core.enums", packagePath),
					fmt.Sprintf("%s.core.security", packagePath),
				},
				DisableErrorCode: []string{"return-value", "no-any-return"},
			},
			{
				Module:           []string{fmt.Sprintf("%s.repositories.*", packagePath)},
				DisableErrorCode: []string{"return-value", "no-any-return", "attr-defined"},
			},
			{
				Module:           []string{fmt.Sprintf("%s.factory", packagePath)},
				DisableErrorCode: []string{"arg-type"},
			},
		},
	}
}

func pydanticMypyConfig() PydanticMypyConfig {
	return PydanticMypyConfig{
		InitForbidExtra:            true,
		InitTyped:                  true,
		WarnRequiredDynamicAliases: true,
	}
}

func pylintConfig() PylintConfig {
	return PylintConfig{
		Main: PylintMain{
			PyVersion:      "3.12",
			Jobs:           4,
			LoadPlugins:    []string{"pylint_pydantic", "pylint_per_file_ignores"},
			Persistent:     true,
			SuggestionMode: true,
			Ignore: []string{
				"alembic", "venv", ".venv", "__pycache__", "build",
				"dist", ".git", ".pytest_cache", ".mypy_cache", ".ruff_cache",
			},
			IgnorePaths: []string{
				"^alembic/.*", "^venv/.*", "^.venv/.*", "^build/.*", "^dist/.*",
			},
		},
		MessagesControl: PylintMessagesControl{
			Disable: []string{
				"C0103", "C0116", "C0121", "C0301", "C0302", "C0303",
				"C0304", "C0305", "C0411", "E0401", "E1102", "E1136",
				"R0801", "R0901", "R0903", "R0917", "W0611", "W0612",
				"W0613", "W0621", "W0622", "W0718",
			},
		},
		PerFileIgnores: map[string]string{
			"alembic/env.py": "no-member",
			"conftest.py":    "import-outside-toplevel",
		},
		Format: PylintFormat{
			MaxLineLength: 95,
		},
		Design: PylintDesign{
			MaxArgs:       12,
			MaxAttributes: 10,
			MaxBranches:   15,
			MaxLocals:     20,
			MaxStatements: 55,
		},
	}
}

func pytestConfig() PytestConfig {
	return PytestConfig{
		IniOptions: PytestIniOptions{
			AsyncioMode:                    "auto",
			AsyncioDefaultFixtureLoopScope: "function",
			Testpaths:                      []string{"tests"},
			Addopts:                        "-ra -q",
			Filterwarnings:                 []string{"ignore::DeprecationWarning"},
		},
	}
}

func coverageConfig(packagePath string) CoverageConfig {
	return CoverageConfig{
		Run: CoverageRun{
			Branch: true,
			Source: []string{packagePath},
		},
		Report: CoverageReport{
			ExcludeLines: []string{
				"pragma: no cover",
				"if TYPE_CHECKING:",
				"raise NotImplementedError",
			},
		},
	}
}

func tyConfig(packagePath string) TyConfig {
	return TyConfig{
		Src: TySrc{
			Include:            []string{packagePath, "tests"},
			Exclude:            []string{"alembic/versions/**", ".venv/**"},
			RespectIgnoreFiles: true,
		},
		Environment: TyEnvironment{
			PythonVersion: "3.12",
			Root:          []string{fmt.Sprintf("./%s", packagePath)},
			Python:        "./.venv",
		},
		Rules: map[string]string{
			"possibly-missing-attribute": "error",
			"possibly-missing-import":    "error",
			"unused-ignore-comment":      "warn",
			"redundant-cast":             "warn",
			"undefined-reveal":           "warn",
		},
		Overrides: []TyOverride{
			{
				Include: []string{"tests/**"},
				Rules: map[string]string{
					"unresolved-reference":  "warn",
					"invalid-argument-type": "warn",
				},
			},
			{
				Include: []string{
					fmt.Sprintf("%s/repositories/**", packagePath),
					fmt.Sprintf("%s/services/**", packagePath),
				},
				Rules: map[string]string{
					"unresolved-attribute": "warn",
				},
			},
		},
		Terminal: TyTerminal{
			ErrorOnWarning: false,
			OutputFormat:   "full",
		},
	}
}
