package engine

// DefaultISOChain builds the handler order for an ISO-turn canal, which has
// no canned cycles: variable resolution, control flow, the three modal
// groups, then motion.
func DefaultISOChain() *Chain {
	return NewChain(
		NewVariableHandler(),
		NewControlFlowHandler(),
		NewGroup5Handler(),
		NewGroup2Handler(),
		NewGroup0Handler(),
		NewMotionHandler(),
	)
}

// DefaultSiemensChain builds the handler order for a Siemens-mill canal:
// the same core chain with CycleHandler appended so an unresolved
// POCKET4/SLOT2/CYCLE61/drilling call still reaches an expansion step
// after the modal handlers have updated spindle/feed state for it.
func DefaultSiemensChain() *Chain {
	return NewChain(
		NewVariableHandler(),
		NewControlFlowHandler(),
		NewGroup5Handler(),
		NewGroup2Handler(),
		NewGroup0Handler(),
		NewMotionHandler(),
		NewCycleHandler(),
	)
}
