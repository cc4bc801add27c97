package services

import "html/template"

var proposalTemplate = template.Must(template.New("proposal").Parse(proposalHTML))

const proposalStyles = `
body {
    font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
    color: #2d3436;
    margin: 0;
    padding: 0;
    background: #ffffff;
}
.page {
    max-width: 800px;
    margin: 0 auto;
    padding: 32px 40px;
}
.header {
    display: flex;
    align-items: center;
    border-bottom: 3px solid #2EC4A0;
    padding-bottom: 20px;
    margin-bottom: 28px;
}
.header img.logo {
    width: 64px;
    height: 64px;
    margin-right: 20px;
}
.header .meta h1 {
    margin: 0 0 4px 0;
    font-size: 26px;
}
.header .meta p {
    margin: 2px 0;
    color: #636e72;
    font-size: 14px;
}
h2.section-title {
    font-size: 20px;
    color: #2EC4A0;
    border-bottom: 1px solid #dfe6e9;
    padding-bottom: 6px;
    margin-top: 32px;
}
.venue-card {
    margin: 20px 0;
    padding: 16px 20px;
    border: 1px solid #dfe6e9;
    border-radius: 8px;
    page-break-inside: avoid;
}
.venue-card h3 {
    margin: 0 0 6px 0;
    font-size: 18px;
}
.venue-card .location {
    color: #636e72;
    font-size: 13px;
    margin-bottom: 10px;
}
.venue-card .description {
    font-size: 14px;
    line-height: 1.6;
    margin: 10px 0;
}
.venue-card .photos img {
    width: 160px;
    height: 110px;
    object-fit: cover;
    border-radius: 4px;
    margin-right: 8px;
    margin-bottom: 8px;
}
.detail-grid {
    font-size: 13px;
    margin-top: 10px;
}
.detail-grid .row {
    margin: 3px 0;
}
.detail-grid .label {
    font-weight: bold;
    color: #636e72;
}
.pros { color: #00805a; }
.cons { color: #b33939; }
ul.plain-list {
    font-size: 14px;
    line-height: 1.7;
    padding-left: 20px;
}
ul.plain-list .city {
    color: #636e72;
    font-size: 12px;
}
`

const proposalHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Venue Proposal - {{.EventName}}</title>
<style>` + proposalStyles + `</style>
</head>
<body>
<div class="page">
    <div class="header">
        {{if .ClientLogoURL}}<img class="logo" src="{{.ClientLogoURL}}" alt="{{.ClientName}}">{{else}}<img class="logo" src="{{.LogoDataURI}}" alt="VenueScout">{{end}}
        <div class="meta">
            <h1>Venue Proposal</h1>
            <p>{{.ClientName}} &mdash; {{.EventName}}</p>
            {{if .DateRange}}<p>{{.DateRange}}</p>{{end}}
            {{if .AttendeeCount}}<p>{{.AttendeeCount}} attendees</p>{{end}}
        </div>
    </div>

    <h2 class="section-title">Recommended Venues</h2>
    {{range .Included}}
    <div class="venue-card">
        <h3>{{.Name}}</h3>
        <div class="location">{{.City}}{{if .Address}} &middot; {{.Address}}{{end}} &middot; capacity {{.Capacity}}</div>
        {{if .Photos}}
        <div class="photos">
            {{range .Photos}}<img src="{{.URL}}" alt="{{.Caption}}">{{end}}
        </div>
        {{end}}
        {{if .Description}}<div class="description">{{.Description}}</div>{{end}}
        <div class="detail-grid">
            {{if .QuotedPrice}}<div class="row"><span class="label">Quoted price:</span> &euro;{{.QuotedPrice}}</div>{{end}}
            {{if .AvailabilityDates}}<div class="row"><span class="label">Availability:</span> {{.AvailabilityDates}}</div>{{end}}
            {{if .RoomAllocation}}<div class="row"><span class="label">Rooms:</span> {{.RoomAllocation}}</div>{{end}}
            {{if .CateringDescription}}<div class="row"><span class="label">Catering:</span> {{.CateringDescription}}</div>{{end}}
            {{if .Pros}}<div class="row pros"><span class="label">Pros:</span> {{.Pros}}</div>{{end}}
            {{if .Cons}}<div class="row cons"><span class="label">Cons:</span> {{.Cons}}</div>{{end}}
        </div>
    </div>
    {{end}}

    {{if .Awaiting}}
    <h2 class="section-title">Awaiting Response</h2>
    <ul class="plain-list">
        {{range .Awaiting}}<li>{{.Name}} <span class="city">({{.City}})</span></li>{{end}}
    </ul>
    {{end}}

    {{if .Declined}}
    <h2 class="section-title">Not Available</h2>
    <ul class="plain-list">
        {{range .Declined}}<li>{{.Name}} <span class="city">({{.City}})</span></li>{{end}}
    </ul>
    {{end}}
</div>
</body>
</html>
`
