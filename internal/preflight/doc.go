// Package preflight provides readiness checks for the directories and
// filesystem capacity a training run depends on.
//
// These checks run in two contexts:
//   - The pipeline driver calls RunAll before the first phase, so a doomed
//     run fails in milliseconds instead of minutes into rendering.
//   - The CLI "letterpress deps" command combines CheckSystemDeps with the
//     directory checks to display environment health.
package preflight
