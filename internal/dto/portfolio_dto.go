package dto

type PhotographerResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type ShotResponse struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Caption  string `json:"caption"`
}

// HomeViewResponse carries everything the index template needs.
// Photographer is nil when none has been seeded; the view renders a
// placeholder in that case.
type HomeViewResponse struct {
	Photographer *PhotographerResponse
	Shots        []*ShotResponse
}
