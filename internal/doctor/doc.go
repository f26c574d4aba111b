// Package doctor checks whether the local environment can create and set
// up a Whop app.
//
// The report covers three categories:
//
//   - [CategoryGit]: git on PATH and a commit identity
//   - [CategoryPackageManager]: which package managers are installed
//   - [CategoryConfig]: whether the config file parses
//
// Each [Check] carries a [Status] and, when something is off, a Hint with
// the command that fixes it.
//
// # Usage
//
//	report := doctor.Run(ctx, cfg, doctor.Options{ConfigPath: path})
//	doctor.Print(w, report, styles)
package doctor
