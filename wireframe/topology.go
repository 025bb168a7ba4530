package wireframe

// Topology construction. All tables here are computed once by New and
// never mutated afterwards.
//
// The half-period node lattice has nPhi+1 toroidal planes (plane 0 and
// plane nPhi lie on the two symmetry planes) and nTheta poloidal
// positions. Poloidal segments on the symmetry planes exist only for
// j < nTheta/2: the complementary half is identified with them by the
// stellarator reflection, so instantiating it would double-count degrees
// of freedom. Everywhere a direct predecessor/successor is missing, the
// folding j -> nTheta-j (or nTheta-j-1) locates the mirrored segment.

// buildSegments populates the toroidal/poloidal segment keys and the
// endpoint table.
func (w *Wireframe) buildSegments() {
	nPhi, nTheta := w.nPhi, w.nTheta
	half := nTheta / 2

	// Toroidal segments: (i,j) -> (i+1,j), flattened row-major.
	w.torKey = make([][]int, nPhi+1)
	for i := 0; i <= nPhi; i++ {
		w.torKey[i] = make([]int, nTheta)
		for j := 0; j < nTheta; j++ {
			if i < nPhi {
				w.torKey[i][j] = i*nTheta + j
			} else {
				w.torKey[i][j] = -1
			}
		}
	}

	w.segments = make([][2]int, w.nSegments)
	for i := 0; i < nPhi; i++ {
		for j := 0; j < nTheta; j++ {
			s := i*nTheta + j
			w.segments[s] = [2]int{w.NodeIndex(i, j), w.NodeIndex(i+1, j)}
		}
	}

	// Poloidal segments: half a plane's worth on each symmetry plane,
	// full planes in between.
	w.polKey = make([][]int, nPhi+1)
	for i := 0; i <= nPhi; i++ {
		w.polKey[i] = make([]int, nTheta)
		for j := range w.polKey[i] {
			w.polKey[i][j] = -1
		}
	}

	nTor := w.nTorSegments
	for k := 0; k < half; k++ {
		s := nTor + k
		w.polKey[0][k] = s
		w.segments[s] = [2]int{w.NodeIndex(0, k), w.NodeIndex(0, k+1)}
	}
	for i := 1; i < nPhi; i++ {
		base := nTor + half + (i-1)*nTheta
		for j := 0; j < nTheta; j++ {
			s := base + j
			w.polKey[i][j] = s
			w.segments[s] = [2]int{w.NodeIndex(i, j), w.NodeIndex(i, (j+1)%nTheta)}
		}
	}
	lastBase := nTor + w.nPolSegments - half
	for k := 0; k < half; k++ {
		s := lastBase + k
		w.polKey[nPhi][k] = s
		w.segments[s] = [2]int{w.NodeIndex(nPhi, k), w.NodeIndex(nPhi, k+1)}
	}
}

// buildConnectivity derives the 4 connected segments of every node by case
// analysis on its toroidal plane: first symmetry plane, interior, second
// symmetry plane. Getting the fold indices wrong here would make
// continuity constraints silently reference the wrong segments, so each
// branch mirrors the derivation in the package comment above.
func (w *Wireframe) buildConnectivity() {
	nPhi, nTheta := w.nPhi, w.nTheta
	half := nTheta / 2

	w.connected = make([][4]int, w.nNodes)
	for i := 0; i <= nPhi; i++ {
		for j := 0; j < nTheta; j++ {
			var torIn, polIn, torOut, polOut int

			switch {
			case i == 0:
				// First symmetry plane: the incoming toroidal segment is
				// the mirror image of the outgoing one.
				torIn = w.torKey[0][(nTheta-j)%nTheta]
				torOut = w.torKey[0][j]
				switch {
				case j == 0:
					polIn = w.polKey[0][0]
					polOut = w.polKey[0][0]
				case j < half:
					polIn = w.polKey[0][j-1]
					polOut = w.polKey[0][j]
				case j == half:
					polIn = w.polKey[0][j-1]
					polOut = w.polKey[0][j-1]
				default:
					polIn = w.polKey[0][nTheta-j]
					polOut = w.polKey[0][nTheta-j-1]
				}

			case i < nPhi:
				// Interior plane: ordinary lattice neighbors with poloidal
				// wrap-around.
				torIn = w.torKey[i-1][j]
				torOut = w.torKey[i][j]
				if j == 0 {
					polIn = w.polKey[i][nTheta-1]
				} else {
					polIn = w.polKey[i][j-1]
				}
				polOut = w.polKey[i][j]

			default:
				// Second symmetry plane: outgoing toroidal current folds
				// back onto the mirrored incoming segment.
				torIn = w.torKey[nPhi-1][j]
				torOut = w.torKey[nPhi-1][(nTheta-j)%nTheta]
				switch {
				case j == 0:
					polIn = w.polKey[nPhi][0]
					polOut = w.polKey[nPhi][0]
				case j < half:
					polIn = w.polKey[nPhi][j-1]
					polOut = w.polKey[nPhi][j]
				case j == half:
					polIn = w.polKey[nPhi][j-1]
					polOut = w.polKey[nPhi][j-1]
				default:
					polIn = w.polKey[nPhi][nTheta-j]
					polOut = w.polKey[nPhi][nTheta-j-1]
				}
			}

			w.connected[w.NodeIndex(i, j)] = [4]int{torIn, polIn, torOut, polOut}
		}
	}
}

// buildCells populates the bordering-segment and neighbor tables of every
// grid cell, following the same three-case folding as buildConnectivity.
func (w *Wireframe) buildCells() {
	nPhi, nTheta := w.nPhi, w.nTheta
	half := nTheta / 2
	nCells := nPhi * nTheta

	cell := func(i, j int) int { return i*nTheta + j }

	w.cellKey = make([][4]int, nCells)
	w.cellNeighbors = make([][4]int, nCells)

	for i := 0; i < nPhi; i++ {
		for j := 0; j < nTheta; j++ {
			var torLower, polHigher, torHigher, polLower int
			var nbrNPol, nbrPTor, nbrPPol, nbrNTor int

			switch {
			case i == 0:
				torLower = w.torKey[i][j]
				polHigher = w.polKey[i+1][j]
				torHigher = w.torKey[i][(j+1)%nTheta]
				if j < half {
					polLower = w.polKey[i][j]
				} else {
					polLower = w.polKey[i][nTheta-j-1]
				}
				nbrNPol = cell(i, (j-1+nTheta)%nTheta)
				nbrPTor = cell(i+1, j)
				nbrPPol = cell(i, (j+1)%nTheta)
				nbrNTor = cell(i, nTheta-j-1)

			case i < nPhi-1:
				torLower = w.torKey[i][j]
				polHigher = w.polKey[i+1][j]
				torHigher = w.torKey[i][(j+1)%nTheta]
				polLower = w.polKey[i][j]

				nbrNPol = cell(i, (j-1+nTheta)%nTheta)
				nbrPTor = cell(i+1, j)
				nbrPPol = cell(i, (j+1)%nTheta)
				nbrNTor = cell(i-1, j)

			default:
				torLower = w.torKey[i][j]
				if j < half {
					polHigher = w.polKey[i+1][j]
				} else {
					polHigher = w.polKey[i+1][nTheta-j-1]
				}
				torHigher = w.torKey[i][(j+1)%nTheta]
				polLower = w.polKey[i][j]

				nbrNPol = cell(i, (j-1+nTheta)%nTheta)
				nbrPTor = cell(i, nTheta-j-1)
				nbrPPol = cell(i, (j+1)%nTheta)
				nbrNTor = cell(i-1, j)
			}

			c := cell(i, j)
			w.cellKey[c] = [4]int{torLower, polHigher, torHigher, polLower}
			w.cellNeighbors[c] = [4]int{nbrNPol, nbrPTor, nbrPPol, nbrNTor}
		}
	}
}
