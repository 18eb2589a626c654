package movement

// NextSceneIndex returns the scene after current, wrapping to 0 (the menu)
// past the last registered scene.
func NextSceneIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	next := current + 1
	if next >= count || next < 0 {
		return 0
	}
	return next
}

// EnterExit loads the scene that follows the active one and returns its index.
func EnterExit(scenes SceneLoader) int {
	next := NextSceneIndex(scenes.ActiveScene(), scenes.SceneCount())
	scenes.LoadScene(next)
	return next
}
