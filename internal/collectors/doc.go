// Package collectors implements the inventory data sources.
//
// Two collectors feed the inventory cache on Windows:
//   - Registry: enumerates the Uninstall keys under HKLM (64- and 32-bit
//     views) and HKCU, yielding display name, version, publisher, install
//     location, and an executable path parsed from DisplayIcon.
//   - StartMenu: invokes PowerShell Get-StartApps and yields name plus the
//     opaque AppID launch handle.
//
// Both honor the context deadline set by the cache and report failure as
// an error; the cache absorbs collector errors as an empty contribution.
// On platforms without the required OS facilities the constructors return
// inert collectors that yield no records.
package collectors
