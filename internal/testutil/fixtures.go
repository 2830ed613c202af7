package testutil

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"sync"
	"testing/fstest"
)

// Curve counts of the synthetic data tree. They match the sizes of the real
// published datasets.
const (
	TreeTM30Sources = 3
	TreeMunsell     = 1269
	TreeMacbeth     = 24
)

var (
	treeOnce sync.Once
	tree     fstest.MapFS
)

// SpectralTree returns a synthetic data root with every required file of the
// spectral database, shaped like the real files: column oriented, wavelength
// first, comma separated. The Capbone archive is not included. Callers get
// their own copy of the map and may add or replace files.
func SpectralTree() fstest.MapFS {
	treeOnce.Do(func() { tree = buildTree() })
	return maps.Clone(tree)
}

func buildTree() fstest.MapFS {
	nm1 := Axis(360, 830, 1)
	nm5 := Axis(360, 830, 5)
	f := Axis(380, 780, 5)

	fsys := fstest.MapFS{}
	seed := int64(1)
	put := func(name string, wl []float64, n int) {
		fsys[name] = &fstest.MapFile{Data: ColumnFile(wl, DeterministicCurves(seed, n, len(wl)))}
		seed++
	}

	put("spds/IESTM30_15_Sspds.dat", nm1, TreeTM30Sources)
	put("spds/D65.dat", Axis(300, 830, 1), 1)
	put("spds/A.dat", Axis(300, 830, 1), 1)
	put("spds/CIE_F_1to12.csv", f, 12)
	put("spds/CIE_F3_1to15.csv", f, 15)

	var info strings.Builder
	info.WriteString("id,name,type\n")
	for i := 0; i < TreeTM30Sources; i++ {
		fmt.Fprintf(&info, "%d,\"Source %d, LED\",LED\n", i+1, i+1)
	}
	fsys["spds/IESTM30_15_Sinfo.txt"] = &fstest.MapFile{Data: []byte(info.String())}

	put("rfls/CIE_13_3_1995_R14.dat", nm5, 14)
	put("rfls/IESTM30_15_R4880.dat", nm5, 4880)
	put("rfls/IESTM30_15_R99_1nm.dat", nm1, 99)
	put("rfls/IESTM30_15_R99_5nm.dat", nm5, 99)
	put("rfls/CIE224_2017_R99_1nm.dat", nm1, 99)
	put("rfls/CIE224_2017_R99_5nm.dat", nm5, 99)
	put("rfls/CRI2012_HL17.dat", nm5, 17)
	put("rfls/CRI2012_Hybrid14_1000.dat", nm5, 1000)
	put("rfls/CRI2012_R210.dat", nm5, 210)
	put("rfls/MCRI_R10.dat", nm5, 10)
	put("rfls/CQSv7dot5.dat", nm5, 15)
	put("rfls/CQSv9dot0.dat", nm5, 15)
	put("rfls/Opstelten1983_215.dat", nm5, 215)
	put("rfls/Munsell1269.dat", nm5, TreeMunsell)
	put("rfls/MacbethColorChecker.dat", nm5, TreeMacbeth)

	cats := make([]string, 99)
	for i := range cats {
		cats[i] = strconv.Itoa(i%7 + 1)
	}
	fsys["rfls/IESTM30_15_R99info.dat"] = &fstest.MapFile{Data: []byte(strings.Join(cats, ",") + "\n")}

	fsys["rfls/Munsell1269NotationInfo.dat"] = &fstest.MapFile{Data: MunsellNotation(TreeMunsell)}
	return fsys
}

// ColumnFile formats curves as a comma separated, column oriented file: one
// line per wavelength, the wavelength first.
func ColumnFile(wl []float64, curves [][]float64) []byte {
	var b strings.Builder
	for j, w := range wl {
		b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
		for _, c := range curves {
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(c[j], 'g', 6, 64))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// MunsellNotation returns a notation file with n rows. Row i has hue
// "<i%4*2.5+2.5>R", value i%9+1, chroma 2*(i%8), hue angle i%360 and a,b set
// to i and -i.
func MunsellNotation(n int) []byte {
	var b strings.Builder
	b.WriteString("nr,H,V,C,h,a,b\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,%gR,%d,%d,%d,%d,%d\n", i+1, float64(i%4)*2.5+2.5, i%9+1, 2*(i%8), i%360, i, -i)
	}
	return []byte(b.String())
}
