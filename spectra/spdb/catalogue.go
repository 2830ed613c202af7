package spdb

// Directories below the data root.
const (
	SPDDir = "spds"
	RFLDir = "rfls"
)

// Light-source spectra files.
const (
	fileTM30Sources    = "IESTM30_15_Sspds.dat"
	fileTM30SourceInfo = "IESTM30_15_Sinfo.txt"
	fileD65            = "D65.dat"
	fileA              = "A.dat"
	fileF1to12         = "CIE_F_1to12.csv"
	fileF3to15         = "CIE_F3_1to15.csv"
	// HP1-HP5 are taken from the first five curves of the F3 series file.
	fileHP1to5 = fileF3to15
)

// Reflectance files.
const (
	fileCIE133R14      = "CIE_13_3_1995_R14.dat"
	fileTM30R4880      = "IESTM30_15_R4880.dat"
	fileTM30R99_1nm    = "IESTM30_15_R99_1nm.dat"
	fileTM30R99_5nm    = "IESTM30_15_R99_5nm.dat"
	fileTM30R99Info    = "IESTM30_15_R99info.dat"
	fileCIE224R99_1nm  = "CIE224_2017_R99_1nm.dat"
	fileCIE224R99_5nm  = "CIE224_2017_R99_5nm.dat"
	fileCRI2012HL17    = "CRI2012_HL17.dat"
	fileCRI2012HL1000  = "CRI2012_Hybrid14_1000.dat"
	fileCRI2012Real210 = "CRI2012_R210.dat"
	fileMCRI           = "MCRI_R10.dat"
	fileCQSv75         = "CQSv7dot5.dat"
	fileCQSv90         = "CQSv9dot0.dat"
	fileOpstelten      = "Opstelten1983_215.dat"
	fileMunsell        = "Munsell1269.dat"
	fileMunsellInfo    = "Munsell1269NotationInfo.dat"
	fileMacbeth        = "MacbethColorChecker.dat"
	fileCapbone        = "capbone_100k_rfls.npz"

	capboneArray = "_CAPBONE_100K_RFL"
)

// Expected curve counts. Zero means any.
const (
	curvesSingle    = 1
	curvesF         = 12
	curvesF3        = 15
	curvesHP        = 5
	curvesCIE133    = 14
	curvesCIE133R8  = 8
	curves99        = 99
	curves4880      = 4880
	curvesHL17      = 17
	curvesHL1000    = 1000
	curvesReal210   = 210
	curvesMCRI      = 10
	curvesCQS       = 15
	curvesOpstelten = 215
	curvesMunsell   = 1269
	curvesMacbeth   = 24
)

// IES99Categories lists the TM30 99-sample categories in file index order
// (index 1 is "nature").
var IES99Categories = []string{"nature", "skin", "textiles", "paints", "plastic", "printed", "color system"}

// MCRIObjects names the ten MCRI familiar objects in curve order. N4 is a
// neutral grey sphere.
var MCRIObjects = []string{
	"apple", "banana", "orange", "lavender", "smurf",
	"strawberry yoghurt", "sliced cucumber", "cauliflower", "caucasian skin", "N4",
}

// Munsell viewing conditions the 1269 set is specified under.
const (
	MunsellCIEObs = "1931_2"
	MunsellLw     = 400.0
	MunsellYb     = 0.2
)
