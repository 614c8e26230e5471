// Package language renders human-readable names for training language codes.
//
// Codes follow the traineddata convention: an ISO 639 base, optionally
// suffixed with a script or era variant (chi_sim, srp_latn, ita_old). Base
// names come from the ISO display tables; the handful of synthetic and
// historic codes those tables miss are overridden locally.
package language
