package fixed

var (
	Zero = MustNew(0, 0)
	One  = MustNew(1, 0)

	// SqrtGraham is √22.5, the multiplier of the Graham number.
	SqrtGraham = MustNew(474341649025257, 14)
)
