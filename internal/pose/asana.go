package pose

// Asana is a supported target pose.
type Asana string

// Surya Namaskar sequence.
const (
	AsanaPranamasana              Asana = "pranamasana"
	AsanaHastauttanasana          Asana = "hastauttanasana"
	AsanaHastapadasana            Asana = "hastapadasana"
	AsanaRightAshwaSanchalanasana Asana = "right_ashwa_sanchalanasana"
	AsanaDandasana                Asana = "dandasana"
	AsanaAshtangaNamaskara        Asana = "ashtanga_namaskara"
	AsanaBhujangasana             Asana = "bhujangasana"
	AsanaAdhoMukhaSvanasana       Asana = "adho_mukha_svanasana"
	AsanaAshwaSanchalanasana      Asana = "ashwa_sanchalanasana"
)

// Asanas lists every supported pose in sequence order.
var Asanas = []Asana{
	AsanaPranamasana,
	AsanaHastauttanasana,
	AsanaHastapadasana,
	AsanaRightAshwaSanchalanasana,
	AsanaDandasana,
	AsanaAshtangaNamaskara,
	AsanaBhujangasana,
	AsanaAdhoMukhaSvanasana,
	AsanaAshwaSanchalanasana,
}

var (
	elbows    = []JointID{JointLeftElbow, JointRightElbow}
	shoulders = []JointID{JointLeftShoulder, JointRightShoulder}
	hips      = []JointID{JointLeftHip, JointRightHip}
	knees     = []JointID{JointLeftKnee, JointRightKnee}
	ankles    = []JointID{JointLeftAnkle, JointRightAnkle}
)

func concat(groups ...[]JointID) []JointID {
	var out []JointID
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// asanaJoints holds the joints evaluated per pose. Joints that carry no
// information for a pose (e.g. ankles while standing upright) are left out.
var asanaJoints = map[Asana][]JointID{
	AsanaPranamasana:              concat(elbows, knees),
	AsanaHastauttanasana:          concat(elbows, shoulders, knees),
	AsanaHastapadasana:            concat(elbows, hips, knees),
	AsanaRightAshwaSanchalanasana: concat(shoulders, hips, knees),
	AsanaDandasana:                concat(elbows, shoulders, hips, knees),
	AsanaAshtangaNamaskara:        concat(elbows, hips, knees),
	AsanaBhujangasana:             concat(elbows, shoulders, hips),
	AsanaAdhoMukhaSvanasana:       concat(elbows, shoulders, hips, knees, ankles),
	AsanaAshwaSanchalanasana:      concat(shoulders, hips, knees),
}

func (a Asana) String() string {
	return string(a)
}

func (a Asana) IsValid() bool {
	_, ok := asanaJoints[a]
	return ok
}

// JointsFor returns the joints checked for the given pose, in a stable
// order. The returned slice must not be modified.
func JointsFor(a Asana) ([]JointID, bool) {
	j, ok := asanaJoints[a]
	return j, ok
}
