// Package spdb loads the light-source (SPD) and reflectance (RFL) spectral
// databases used by colour rendition calculations.
//
// A data root holds two directories: spds/ with light-source spectra and
// rfls/ with reflectance factors. [Load] reads the fixed catalogue of files
// from that root once and returns a read-only [Database]:
//
//   - CIE illuminants (E, D65, A, B, C, F1-F12, F3.1-F3.15, HP1-HP5)
//   - IES TM30-15 and TM30-18 source and sample sets
//   - CIE 224:2017, CIE 13.3-1995, CRI2012, MCRI, CQS and Opstelten sample sets
//   - the 1269 matt Munsell samples with their notation
//   - the 24 Macbeth ColorChecker samples
//   - the optional 114120-sample Capbone archive
//
// Every table is wavelength-first regardless of the orientation of the file
// it came from. Missing or malformed required files abort the load; only the
// Capbone archive may be absent, in which case it is reported unavailable.
//
// [Default] returns a process-wide instance loaded from [DefaultRoot].
package spdb
