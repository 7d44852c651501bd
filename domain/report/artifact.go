package report

// ChartKind identifies the logical plot that produced an artifact.
type ChartKind string

const (
	ChartDistribution ChartKind = "distribution"
	ChartCorrelation  ChartKind = "correlation"
	ChartPairplot     ChartKind = "pairplot"
	ChartBoxplot      ChartKind = "boxplot"
)

// ChartArtifact is a named, immutable rendered chart image. The PNG payload
// is fully materialized; AspectRatio (width/height) is a layout hint, the
// document assembler fixes the physical embed size.
type ChartArtifact struct {
	Kind        ChartKind
	Title       string
	PNG         []byte
	AspectRatio float64
}
