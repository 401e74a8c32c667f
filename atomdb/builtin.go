/*
 * builtin.go, part of goNCI.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package atomdb

//NCIPlot is the name of the built-in dataset.
const NCIPlot = "nciplot"

//Free-atom densities for H-Ar as fits to 3 exponentials, the ones used for
//promolecular densities in NCIPLOT (Johnson et al. J. Am. Chem. Soc. 2010, 132, 6498).
//Terms with a zero coefficient are dropped when building the dataset.
var (
	nciC1 = [18]float64{0.2815, 2.437, 11.84, 31.34, 67.82, 120.2, 190.9, 289.5, 406.3, 561.3, 760.8, 1016., 1319., 1658., 2042., 2501., 3024., 3625.}
	nciC2 = [18]float64{0., 0., 0.06332, 0.3694, 0.8527, 1.172, 2.247, 2.879, 3.049, 6.984, 22.42, 37.17, 57.95, 85.55, 121.3, 162.2, 213.0, 271.5}
	nciC3 = [18]float64{0., 0., 0., 0., 0., 0., 0., 0., 0., 0., 0.06358, 0.3331, 0.8878, 0.7888, 1.465, 2.170, 3.369, 5.211}
	nciZ1 = [18]float64{0.5288, 0.3379, 0.1912, 0.1390, 0.1059, 0.0884, 0.0767, 0.0669, 0.0608, 0.0549, 0.0496, 0.0449, 0.0411, 0.0382, 0.0358, 0.0335, 0.0315, 0.0296}
	nciZ2 = [18]float64{1., 1., 0.9992, 0.6945, 0.5300, 0.5480, 0.4532, 0.3974, 0.3994, 0.3447, 0.2511, 0.2150, 0.1874, 0.1654, 0.1509, 0.1369, 0.1259, 0.1168}
	nciZ3 = [18]float64{1., 1., 1., 1., 1., 1., 1., 1., 1., 1., 1.0236, 0.7753, 0.5962, 0.6995, 0.5851, 0.5149, 0.4974, 0.4412}
)

func nciplotDataset() *Dataset {
	D := &Dataset{Name: NCIPlot, Fits: make(map[int]Fit, len(nciC1))}
	for i := range nciC1 {
		var f Fit
		for _, t := range [][2]float64{{nciC1[i], nciZ1[i]}, {nciC2[i], nciZ2[i]}, {nciC3[i], nciZ3[i]}} {
			if t[0] == 0 {
				continue
			}
			f.C = append(f.C, t[0])
			f.Zeta = append(f.Zeta, t[1])
		}
		D.Fits[i+1] = f
	}
	return D
}

func init() {
	if err := Register(nciplotDataset()); err != nil {
		panic(err.Error())
	}
}
