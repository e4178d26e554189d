package handler

import "net/http"

func Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	errs.Add("email", "required")
	errs.Add(fieldEmail, "required")
	errs.Add(``, "required")
	http.Redirect(w, r, `/orders`, http.StatusFound)
}
