package catalog

// Builtin cleaner definitions. Paths mirror the XDG layout used by the
// tools being cleaned; items whose backing command is absent are still
// listed so the user sees why they cannot run.

// Default returns the builtin catalog: user-level categories first, then
// system-level categories whose items require elevated privileges.
func Default() Catalog {
	return Catalog{
		{
			Name:        "Browser Caches",
			Description: "On-disk caches kept by web browsers",
			Items: []Item{
				{
					Name:        "firefox-cache",
					Description: "Mozilla Firefox profile caches",
					Kind:        KindCache,
					Action:      PathsAction([]string{"~/.cache/mozilla"}, KindCache),
				},
				{
					Name:        "chromium-cache",
					Description: "Chromium and Google Chrome caches",
					Kind:        KindCache,
					Action: PathsAction([]string{
						"~/.cache/chromium",
						"~/.cache/google-chrome",
					}, KindCache),
				},
			},
		},
		{
			Name:        "Application Caches",
			Description: "Desktop application cache directories",
			Items: []Item{
				{
					Name:        "thumbnails",
					Description: "Thumbnail previews generated by file managers",
					Kind:        KindCache,
					Action:      PathsAction([]string{"~/.cache/thumbnails"}, KindCache),
				},
				{
					Name:        "fontconfig",
					Description: "Fontconfig render caches",
					Kind:        KindCache,
					Action:      PathsAction([]string{"~/.cache/fontconfig"}, KindCache),
				},
			},
		},
		{
			Name:        "Package Manager Caches",
			Description: "Downloaded package and build artifacts",
			Items: []Item{
				{
					Name:        "pip-cache",
					Description: "Python pip wheel and HTTP caches",
					Kind:        KindPackage,
					Action:      PathsAction([]string{"~/.cache/pip"}, KindPackage),
				},
				{
					Name:        "npm-cache",
					Description: "npm content-addressable cache",
					Kind:        KindPackage,
					Action:      CommandAction("npm-cache", "npm cache clean --force", []string{"~/.npm/_cacache"}, KindPackage),
				},
				{
					Name:        "go-build-cache",
					Description: "Go build cache",
					Kind:        KindPackage,
					Action:      CommandAction("go-build-cache", "go clean -cache", []string{"~/.cache/go-build"}, KindPackage),
				},
				{
					Name:        "cargo-registry",
					Description: "Cargo registry download cache",
					Kind:        KindPackage,
					Action:      PathsAction([]string{"~/.cargo/registry/cache"}, KindPackage),
				},
			},
		},
		{
			Name:        "Temporary Files",
			Description: "User-owned temporary files",
			Items: []Item{
				{
					Name:        "user-tmp",
					Description: "Stale files in the user runtime tmp directories",
					Kind:        KindFile,
					Action:      PathsAction([]string{"~/.local/tmp", "~/tmp"}, KindFile),
				},
			},
		},
		{
			Name:        "Trash",
			Description: "Files moved to the desktop trash can",
			Items: []Item{
				{
					Name:        "trash",
					Description: "Contents of the XDG trash",
					Kind:        KindFile,
					Action: PathsAction([]string{
						"~/.local/share/Trash/files",
						"~/.local/share/Trash/info",
					}, KindFile),
				},
			},
		},
		{
			Name:        "System Caches",
			Description: "Package caches owned by root",
			Items: []Item{
				{
					Name:              "apt-cache",
					Description:       "Downloaded .deb archives",
					Kind:              KindPackage,
					RequiresPrivilege: true,
					Action:            CommandAction("apt-cache", "apt-get clean", []string{"/var/cache/apt/archives"}, KindPackage),
				},
			},
		},
		{
			Name:        "System Logs",
			Description: "Rotated logs and crash dumps owned by root",
			Items: []Item{
				{
					Name:              "journal",
					Description:       "systemd journal older than seven days",
					Kind:              KindLog,
					RequiresPrivilege: true,
					Action:            CommandAction("journal", "journalctl --vacuum-time=7d", []string{"/var/log/journal"}, KindLog),
				},
				{
					Name:              "rotated-logs",
					Description:       "Compressed rotated logs under /var/log",
					Kind:              KindLog,
					RequiresPrivilege: true,
					Action:            PathsAction([]string{"/var/log/*.gz", "/var/log/*.old", "/var/log/*.1"}, KindLog),
				},
				{
					Name:              "crash-dumps",
					Description:       "Kernel and application crash reports",
					Kind:              KindFile,
					RequiresPrivilege: true,
					Action:            PathsAction([]string{"/var/crash"}, KindFile),
				},
			},
		},
	}
}
