package repair

import (
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// occupancy tracks, per resource id, which gene indices currently claim each quantum — enough
// to detect conflicts (more than one claimant) and to search for conflict-free alternatives
// while searching, a candidate gene's own existing claims don't count against itself.
type occupancy map[string]map[int][]int // resource id -> quantum -> claiming gene indices

func (o occupancy) claim(id string, q, geneIdx int) {
	if id == chromosome.Unassigned {
		return
	}
	if o[id] == nil {
		o[id] = make(map[int][]int)
	}
	o[id][q] = append(o[id][q], geneIdx)
}

func (o occupancy) claimants(id string, q int) []int {
	if o[id] == nil {
		return nil
	}
	return o[id][q]
}

// conflictedBy reports whether any claimant of (id, q) other than geneIdx exists.
func (o occupancy) conflictedBy(id string, q, geneIdx int) bool {
	for _, claimant := range o.claimants(id, q) {
		if claimant != geneIdx {
			return true
		}
	}
	return false
}

// buildOccupancy scans every gene's assigned quanta into three independent occupancy maps: one
// per group id, one per instructor, one per room.
func buildOccupancy(genes []*chromosome.SessionGene) (groupOcc, instructorOcc, roomOcc occupancy) {
	groupOcc = make(occupancy)
	instructorOcc = make(occupancy)
	roomOcc = make(occupancy)
	for i, g := range genes {
		for _, q := range g.Quanta {
			if q < 0 {
				continue
			}
			for _, gid := range g.GroupIDs {
				groupOcc.claim(gid, q, i)
			}
			instructorOcc.claim(g.InstructorID, q, i)
			roomOcc.claim(g.RoomID, q, i)
		}
	}
	return
}

// findFreeBlock searches, in ascending quantum order, for the first contiguous block of
// `length` quanta satisfying entity availability for the gene's groups, instructor and room,
// and not already claimed by any OTHER gene in any of the three occupancy maps. geneIdx is
// excluded from the conflict check so a gene can "find" the slot it already occupies.
func findFreeBlock(gene *chromosome.SessionGene, ctx *schedcontext.Context, length, geneIdx int, groupOcc, instructorOcc, roomOcc occupancy) ([]int, bool) {
	total := ctx.QTS.Total()
	if length <= 0 || length > total {
		return nil, false
	}
	for base := 0; base+length <= total; base++ {
		ok := true
		for i := 0; i < length && ok; i++ {
			q := base + i
			ok = quantumFitsGene(gene, ctx, q, geneIdx, groupOcc, instructorOcc, roomOcc)
		}
		if ok {
			block := make([]int, length)
			for i := range block {
				block[i] = base + i
			}
			return block, true
		}
	}
	return nil, false
}

func quantumFitsGene(gene *chromosome.SessionGene, ctx *schedcontext.Context, q, geneIdx int, groupOcc, instructorOcc, roomOcc occupancy) bool {
	for _, gid := range gene.GroupIDs {
		group, ok := ctx.Groups[gid]
		if !ok || !group.IsAvailable(q) || groupOcc.conflictedBy(gid, q, geneIdx) {
			return false
		}
	}
	if gene.InstructorID != chromosome.Unassigned {
		instr, ok := ctx.Instructors[gene.InstructorID]
		if !ok || !instr.IsAvailable(q) || instructorOcc.conflictedBy(gene.InstructorID, q, geneIdx) {
			return false
		}
	}
	if gene.RoomID != chromosome.Unassigned {
		room, ok := ctx.Rooms[gene.RoomID]
		if !ok || !room.IsAvailable(q) || roomOcc.conflictedBy(gene.RoomID, q, geneIdx) {
			return false
		}
	}
	return true
}

// replaceClaim removes a gene's old quanta from the occupancy maps and installs its new ones —
// called after a repair moves a gene, so the next repair stage in the same pass sees up-to-date
// state.
func replaceClaim(gene *chromosome.SessionGene, geneIdx int, newQuanta []int, groupOcc, instructorOcc, roomOcc occupancy) {
	unclaim(groupOcc, gene.GroupIDs, gene.Quanta, geneIdx, true)
	unclaimSingle(instructorOcc, gene.InstructorID, gene.Quanta, geneIdx)
	unclaimSingle(roomOcc, gene.RoomID, gene.Quanta, geneIdx)

	gene.Quanta = newQuanta

	for _, q := range newQuanta {
		for _, gid := range gene.GroupIDs {
			groupOcc.claim(gid, q, geneIdx)
		}
		instructorOcc.claim(gene.InstructorID, q, geneIdx)
		roomOcc.claim(gene.RoomID, q, geneIdx)
	}
}

func unclaim(o occupancy, ids []string, quanta []int, geneIdx int, multi bool) {
	for _, id := range ids {
		unclaimSingle(o, id, quanta, geneIdx)
		if !multi {
			break
		}
	}
}

func unclaimSingle(o occupancy, id string, quanta []int, geneIdx int) {
	if id == chromosome.Unassigned || o[id] == nil {
		return
	}
	for _, q := range quanta {
		claimants := o[id][q]
		filtered := claimants[:0]
		for _, c := range claimants {
			if c != geneIdx {
				filtered = append(filtered, c)
			}
		}
		o[id][q] = filtered
	}
}

// sortedGeneIndices returns 0..n-1, kept as its own helper so every repair iterates genes in
// the same stable, index-ascending order the spec's determinism rule requires.
func sortedGeneIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Ints(idx)
	return idx
}
